package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"leafscan/internal/assistant"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var packFiles []string

	root := &cobra.Command{
		Use:          "lian",
		Short:        "Ask the offline LiAn farming assistant",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringSliceVar(&packFiles, "pack", nil, "extra YAML knowledge pack (repeatable)")

	root.AddCommand(&cobra.Command{
		Use:   "ask <message>",
		Short: "Answer one message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(packFiles)
			if err != nil {
				return err
			}
			printReply(out, engine.Respond(strings.Join(args, " ")))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "chat",
		Short: "Answer messages read line by line until EOF",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(packFiles)
			if err != nil {
				return err
			}
			scanner := bufio.NewScanner(in)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				printReply(out, engine.Respond(line))
			}
			return scanner.Err()
		},
	})

	return root
}

func newEngine(packFiles []string) (*assistant.Engine, error) {
	if len(packFiles) == 0 {
		return assistant.NewEngine(assistant.DefaultKnowledgeBase()), nil
	}

	packs := []*assistant.KnowledgePack{assistant.DefaultPack()}
	for _, path := range packFiles {
		p, err := assistant.LoadPackFile(path)
		if err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}
	return assistant.NewEngine(assistant.MergePacks(packs...)), nil
}

func printReply(out io.Writer, r assistant.Reply) {
	meta := "source=" + r.Source
	if r.Topic != "" {
		meta += " topic=" + string(r.Topic)
	}
	fmt.Fprintf(out, "[%s score=%d]\n%s\n\n", meta, r.Score, r.Text)
}
