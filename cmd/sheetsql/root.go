package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/user/sheetsql"
	"github.com/user/sheetsql/internal/config"
	"github.com/user/sheetsql/internal/logging"
	"github.com/user/sheetsql/pkg/source"
	"github.com/user/sheetsql/pkg/sqlgen"
)

var (
	cfgFile      string
	flagDialect  string
	flagTable    string
	flagSchema   string
	flagSheet    string
	flagBatch    int
	flagColList  bool
	flagTrim     bool
	flagEmptyNul bool
	flagHeader   bool
	flagTokens   []string
	flagDelim    string
	flagColumns  string
	flagExtras   string
	flagOut      string
	flagCopy     bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetsql <file>",
	Short: "sheetsql turns spreadsheets into SQL INSERT scripts",
	Long: `Reads an .xlsx or delimited text file and generates batched INSERT
statements for mysql, postgresql, sqlite or sqlserver, entirely offline.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "job config file (YAML or JSON)")
	rootCmd.Flags().StringVar(&flagDialect, "dialect", "", "target dialect: mysql, postgresql, sqlite, sqlserver")
	rootCmd.Flags().StringVar(&flagTable, "table", "", "target table name")
	rootCmd.Flags().StringVar(&flagSchema, "schema", "", "target schema name")
	rootCmd.Flags().StringVar(&flagSheet, "sheet", "", "sheet name (default: first sheet)")
	rootCmd.Flags().IntVar(&flagBatch, "batch-size", 0, "rows per INSERT statement")
	rootCmd.Flags().BoolVar(&flagColList, "column-list", true, "emit the column list in each INSERT")
	rootCmd.Flags().BoolVar(&flagTrim, "trim", true, "trim string cells")
	rootCmd.Flags().BoolVar(&flagEmptyNul, "empty-as-null", false, "encode empty strings as NULL")
	rootCmd.Flags().BoolVar(&flagHeader, "header", true, "treat the first row as a header")
	rootCmd.Flags().StringSliceVar(&flagTokens, "null-token", nil, "string that encodes as NULL (repeatable)")
	rootCmd.Flags().StringVar(&flagDelim, "delimiter", "", "delimiter for text files (default: comma, tab for .tsv)")
	rootCmd.Flags().StringVar(&flagColumns, "columns", "", "column mappings as a JSON array")
	rootCmd.Flags().StringVar(&flagExtras, "extra-columns", "", "extra columns as a JSON array")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the script to a file instead of stdout")
	rootCmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the script to the clipboard")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	viper.BindPFlag("dialect", rootCmd.Flags().Lookup("dialect"))
	viper.BindPFlag("batch-size", rootCmd.Flags().Lookup("batch-size"))
}

func initViper() {
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".sheetsql")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.NewDefaultLogger()
	if flagVerbose {
		logger.SetLevel("debug")
	} else {
		logger.SetLevel("warn")
	}

	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	opts, err := cfg.Generator.Options()
	if err != nil {
		return err
	}

	path := args[0]
	wb, err := source.Open(path, cfg.Generator.DelimiterRune())
	if err != nil {
		return err
	}
	defer wb.Close()
	if s, ok := wb.(interface{ SetLogger(sheetsql.Logger) }); ok {
		s.SetLogger(logger)
	}

	raw, err := wb.Rows(cfg.Generator.Sheet)
	if err != nil {
		return err
	}
	rows := sqlgen.RowsFromAny(raw)

	columns := cfg.Columns
	if len(columns) == 0 {
		columns = sqlgen.InferColumns(rows, cfg.Generator.HasHeader)
	}
	if cfg.Generator.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	script := sqlgen.BuildInsertScript(rows, columns, cfg.ExtraColumns, opts)
	if script == "" {
		logger.Warn("nothing to generate", "file", path, "table", cfg.Generator.Table)
		return nil
	}

	if flagCopy {
		if err := clipboard.WriteAll(script); err != nil {
			logger.Warn("clipboard copy failed", "error", err.Error())
		}
	}
	if flagOut != "" {
		if err := os.WriteFile(flagOut, []byte(script), 0644); err != nil {
			return fmt.Errorf("failed to write script: %w", err)
		}
		logger.Info("script written", "file", flagOut)
		return nil
	}
	fmt.Print(script)
	return nil
}

// applyFlags layers command-line flags over the job file. A flag only wins
// when the user actually set it; the viper-bound ones also pick up values
// from ~/.sheetsql.yaml and the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	g := &cfg.Generator
	if cmd.Flags().Changed("dialect") {
		g.Dialect = flagDialect
	} else if v := viper.GetString("dialect"); v != "" {
		g.Dialect = v
	}
	if cmd.Flags().Changed("batch-size") {
		g.RowsPerInsert = flagBatch
	} else if v := viper.GetInt("batch-size"); v > 0 {
		g.RowsPerInsert = v
	}
	if cmd.Flags().Changed("table") {
		g.Table = flagTable
	}
	if cmd.Flags().Changed("schema") {
		g.Schema = flagSchema
	}
	if cmd.Flags().Changed("sheet") {
		g.Sheet = flagSheet
	}
	if cmd.Flags().Changed("column-list") {
		g.IncludeColumnList = flagColList
	}
	if cmd.Flags().Changed("trim") {
		g.TrimStrings = flagTrim
	}
	if cmd.Flags().Changed("empty-as-null") {
		g.EmptyStringAsNull = flagEmptyNul
	}
	if cmd.Flags().Changed("header") {
		g.HasHeader = flagHeader
	}
	if cmd.Flags().Changed("null-token") {
		g.NullTokens = flagTokens
	}
	if cmd.Flags().Changed("delimiter") {
		g.Delimiter = flagDelim
	}
	if flagColumns != "" {
		cols, err := sqlgen.ParseColumns(flagColumns)
		if err != nil {
			return fmt.Errorf("invalid --columns: %w", err)
		}
		cfg.Columns = cols
	}
	if flagExtras != "" {
		extras, err := sqlgen.ParseExtraColumns(flagExtras)
		if err != nil {
			return fmt.Errorf("invalid --extra-columns: %w", err)
		}
		cfg.ExtraColumns = extras
	}
	return nil
}
