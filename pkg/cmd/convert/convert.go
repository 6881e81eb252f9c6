package main

import (
	"flag"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/export"
	"github.com/acitools/fabricmig/pkg/rewrite"
)

var (
	inputFile    string
	outputFile   string
	mappingFile  string
	templateFile string

	rootCmd = &cobra.Command{
		Use:   "convert",
		Short: "Rewrite an extracted workbook for replay against another fabric",
		Long: `convert applies rename and renumber mappings to a workbook produced by
extract. With --template it instead generates an editable identity mapping
configuration from the workbook's values.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				klog.Fatal(err)
			}
		},
	}
)

func run() error {
	ts, err := export.ReadWorkbook(inputFile)
	if err != nil {
		return err
	}
	klog.Infof("loaded %d sheet(s) from %s", len(ts), inputFile)

	if templateFile != "" {
		tmpl := rewrite.Template(rewrite.Discover(ts))
		if err := os.WriteFile(templateFile, []byte(tmpl), 0o644); err != nil {
			return err
		}
		klog.Infof("wrote mapping template %s", templateFile)
		return nil
	}

	if mappingFile == "" {
		klog.Fatal("either --mapping or --template must be given")
	}
	m, opts, err := rewrite.LoadConfig(mappingFile)
	if err != nil {
		return err
	}
	out, changes, err := rewrite.Apply(ts, m)
	if err != nil {
		return err
	}
	if opts.DisableBDRouting {
		n := rewrite.DisableRouting(out)
		klog.Infof("disabled routing on %d bridge domain row(s)", n)
	}

	dest := outputFile
	if dest == "" {
		dest = strings.TrimSuffix(inputFile, ".xlsx") + "_converted.xlsx"
	}
	if err := export.WriteWorkbook(dest, out); err != nil {
		return err
	}
	klog.Infof("applied %d change(s), wrote %s", changes, dest)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	klog.InitFlags(nil)

	pflag.CommandLine.AddGoFlag(flag.CommandLine.Lookup("v"))
	pflag.CommandLine.AddGoFlag(flag.CommandLine.Lookup("logtostderr"))
	pflag.CommandLine.Set("logtostderr", "true")

	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "extracted workbook (.xlsx)")
	rootCmd.MarkPersistentFlagRequired("input")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "converted workbook path, default <input>_converted.xlsx")
	rootCmd.PersistentFlags().StringVarP(&mappingFile, "mapping", "m", "", "mapping configuration (YAML)")
	rootCmd.PersistentFlags().StringVarP(&templateFile, "template", "t", "", "generate an identity mapping template instead of converting")
}

func initConfig() {
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
