package main

import (
	"context"
	"flag"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/aci"
	"github.com/acitools/fabricmig/pkg/apic"
	"github.com/acitools/fabricmig/pkg/backup"
	"github.com/acitools/fabricmig/pkg/config"
	"github.com/acitools/fabricmig/pkg/export"
	"github.com/acitools/fabricmig/pkg/resolver"
)

var (
	backupFile     string
	apicHost       string
	apicUser       string
	apicPassword   string
	extractionList string
	csvDir         string
	excelFile      string
	routeControl   bool
	intfPolicies   bool

	rootCmd = &cobra.Command{
		Use:   "extract",
		Short: "Extract fabric configuration objects into migration tables",
		Long: `extract resolves the endpoint groups and routed-out constructs named in an
extraction list against a fabric configuration (saved backup or live
controller) and writes the resulting tables as CSV files and/or an Excel
workbook.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				klog.Fatal(err)
			}
		},
	}
)

func run() error {
	list, err := config.Load(extractionList)
	if err != nil {
		return err
	}
	if list.Empty() {
		klog.Fatalf("extraction list %s selects nothing", extractionList)
	}
	klog.Infof("extracting %d EPG request(s), %d L3Out request(s)", len(list.EPGs), len(list.L3Outs))

	raw, err := loadSource()
	if err != nil {
		return err
	}
	fabric, err := aci.Decode(raw)
	if err != nil {
		return err
	}
	klog.Infof("decoded %d objects", fabric.Len())

	opts := resolver.Options{
		IncludeRouteControl:      routeControl,
		IncludeInterfacePolicies: intfPolicies,
	}
	ts := resolver.New(fabric, opts).Resolve(list)
	projected := ts.Tables()
	if len(projected) == 0 {
		klog.Fatal("nothing resolved: no tables to write")
	}

	if csvDir != "" {
		if err := export.WriteCSVDir(csvDir, projected); err != nil {
			return err
		}
	}
	if excelFile != "" {
		if err := export.WriteWorkbook(excelFile, projected); err != nil {
			return err
		}
	}
	klog.Infof("wrote %d table(s)", len(projected))
	return nil
}

func loadSource() ([]byte, error) {
	if backupFile != "" {
		klog.Infof("loading backup %s", backupFile)
		return backup.Load(backupFile)
	}
	if apicHost == "" {
		klog.Fatal("either --backup or --apic must be given")
	}
	password := apicPassword
	if password == "" {
		password = viper.GetString("apic_password")
	}
	if password == "" {
		klog.Fatal("no controller password: set --password or APIC_PASSWORD")
	}
	client, err := apic.New(apicHost)
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	if err := client.Login(ctx, apicUser, password); err != nil {
		return nil, err
	}
	return client.FetchConfig(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
	klog.InitFlags(nil)

	pflag.CommandLine.AddGoFlag(flag.CommandLine.Lookup("v"))
	pflag.CommandLine.AddGoFlag(flag.CommandLine.Lookup("logtostderr"))
	pflag.CommandLine.Set("logtostderr", "true")

	rootCmd.PersistentFlags().StringVarP(&extractionList, "list", "l", "extraction_list.yaml", "extraction request list (YAML)")
	rootCmd.PersistentFlags().StringVarP(&backupFile, "backup", "b", "", "fabric backup file (.json, .tar.gz or .tgz)")
	rootCmd.PersistentFlags().StringVarP(&apicHost, "apic", "a", "", "controller host for live retrieval")
	rootCmd.PersistentFlags().StringVarP(&apicUser, "username", "u", "admin", "controller username")
	rootCmd.PersistentFlags().StringVarP(&apicPassword, "password", "p", "", "controller password (or APIC_PASSWORD)")
	rootCmd.PersistentFlags().StringVarP(&csvDir, "csv-dir", "d", "migration_output", "directory for CSV output, empty to skip")
	rootCmd.PersistentFlags().StringVarP(&excelFile, "excel", "x", "", "Excel workbook output path, empty to skip")
	rootCmd.PersistentFlags().BoolVar(&routeControl, "route-control", true, "extract route-control objects")
	rootCmd.PersistentFlags().BoolVar(&intfPolicies, "interface-policies", true, "extract interface policy groups and profiles")
}

func initConfig() {
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
