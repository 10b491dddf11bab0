package main

import (
	"fmt"
	"strconv"

	"github.com/on-the-ground/splaymemo/pure"
	"github.com/on-the-ground/splaymemo/shared/log"
	"github.com/spf13/cobra"
)

func treeCmd() *cobra.Command {
	var finds []int
	cmd := &cobra.Command{
		Use:   "tree KEY...",
		Short: "Inserts keys (value = key*10) into a splay tree and prints its shape.",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.Flags().IntSliceVar(&finds, "find", nil, "Keys to look up, in order, after inserting.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		tree := pure.NewSplayTree[int]()
		for _, arg := range args {
			k, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid key %q: %w", arg, err)
			}
			tree.Insert(k, k*10)
		}

		for _, k := range finds {
			v, ok := tree.Find(k)
			root, _ := tree.RootKey()
			fields := map[string]interface{}{"key": k, "found": ok, "root": root}
			if ok {
				fields["value"] = v
			}
			log.Effect(ctx, log.LogInfo, "find", fields)
		}

		fmt.Printf("keys: %d, height: %d\n", tree.Len(), tree.Height())
		fmt.Print(tree.String())
		return nil
	}
	return cmd
}
