// Command walrus inspects WebAssembly binary modules: it parses a module
// into bytecode and reports what it found.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kulcsaradam/walrus"
	"github.com/kulcsaradam/walrus/wasm/bytecode"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "walrus",
		Short:         "WebAssembly module parser and bytecode generator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newInspectCommand())
	return root
}

func newInspectCommand() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "inspect <module.wasm>",
		Short: "Parse a module and report its sections and bytecode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return inspect(logger, args[0], dump)
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "disassemble every function's bytecode")
	return cmd
}

func inspect(logger *zap.Logger, path string, dump bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	result, err := walrus.ParseModule(path, source)
	if err != nil {
		logger.Error("parse failed", zap.String("module", path), zap.Error(err))
		return err
	}

	var bytecodeSize int
	for _, fn := range result.Functions {
		bytecodeSize += len(fn.ByteCode)
	}
	logger.Info("module parsed",
		zap.String("module", path),
		zap.Int("types", len(result.FunctionTypes)),
		zap.Int("functions", len(result.Functions)),
		zap.Int("imports", len(result.Imports)),
		zap.Int("exports", len(result.Exports)),
		zap.Int("tables", len(result.Tables)),
		zap.Int("memories", len(result.Memories)),
		zap.Int("globals", len(result.Globals)),
		zap.Int("tags", len(result.Tags)),
		zap.Int("elements", len(result.Elements)),
		zap.Int("datas", len(result.Datas)),
		zap.Int("bytecodeBytes", bytecodeSize),
		zap.Bool("hasStart", result.SeenStart),
	)

	if !dump {
		return nil
	}
	for i, fn := range result.Functions {
		if len(fn.ByteCode) == 0 {
			continue
		}
		text, err := bytecode.Disassemble(fn)
		if err != nil {
			logger.Warn("disassemble failed", zap.Int("function", i), zap.Error(err))
			continue
		}
		fmt.Printf("func[%d] requiredStackSize=%d\n%s", i, fn.RequiredStackSize, text)
	}
	return nil
}
