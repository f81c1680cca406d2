package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"riichi/analyzer"
	"riichi/analyzer/app"
	"riichi/common/config"
	"riichi/common/log"
	"riichi/engines/mahjong"
)

var (
	configFile string
	logLevel   string
	seatWind   string
	roundWind  string
	options    []string
	inputFile  string

	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "立直麻将向听与役种分析",
	Long:  `立直麻将向听与役种分析，手牌记法如 "123m456p789s23s55m 4s"，最后一组单张为和了牌`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file := configFile
		// 默认路径不存在时只用默认值和环境变量
		if !cmd.Flags().Changed("resource") {
			if _, err := os.Stat(file); err != nil {
				file = ""
			}
		}
		cfg := config.InitConfig(file)
		level := logLevel
		if !cmd.Flags().Changed("logLevel") && cfg.Log.Level != "" {
			level = cfg.Log.Level
		}
		log.InitLog(cfg.AppName, level)
		// 报告写 stdout，日志另走 stderr 或文件
		if cfg.Log.Path != "" {
			fn, err := log.SetOutputFile(cfg.Log.Path)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			closeLog = fn
		} else {
			log.SetOutput(os.Stderr)
		}
		log.Debug("配置文件: %+v", *cfg)
		return nil
	},
	SilenceUsage: true,
}

func closeLogFile() {
	if closeLog == nil {
		return
	}
	_ = closeLog()
	closeLog = nil
}

var shantenCmd = &cobra.Command{
	Use:   "shanten <hand>",
	Short: "计算向听数、拆解与听牌",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunShanten(config.Current(), strings.Join(args, " "), cmd.OutOrStdout())
	},
}

var yakuCmd = &cobra.Command{
	Use:   "yaku <hand>",
	Short: "判定和了手牌的役种",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := tableFromFlags()
		if err != nil {
			return err
		}
		return app.RunOne(config.Current(), table, strings.Join(args, " "), cmd.OutOrStdout())
	},
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "列出全部役种",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, y := range mahjong.AllYaku() {
			if y.IsYakuman() {
				fmt.Fprintf(out, "%s (yakuman)\n", y)
				continue
			}
			fmt.Fprintln(out, y)
		}
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "批量分析，每行一手牌，可用 \"| riichi tsumo seat=south\" 附加场况",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := tableFromFlags()
		if err != nil {
			return err
		}
		var in io.Reader = cmd.InOrStdin()
		if inputFile != "" && inputFile != "-" {
			f, err := os.Open(inputFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return app.RunBatch(context.Background(), config.Current(), table, in, cmd.OutOrStdout())
	},
}

func tableFromFlags() (mahjong.TableContext, error) {
	var table mahjong.TableContext
	opts := append([]string(nil), options...)
	if seatWind != "" {
		opts = append(opts, "seat="+seatWind)
	}
	if roundWind != "" {
		opts = append(opts, "round="+roundWind)
	}
	if err := analyzer.ApplyOptions(&table, opts); err != nil {
		return table, err
	}
	return table, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "resource", "resource/application.yml", "resource file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "logLevel", "info", "log level: debug, info, warn, error")

	for _, c := range []*cobra.Command{yakuCmd, batchCmd} {
		c.Flags().StringVar(&seatWind, "seat", "east", "seat wind")
		c.Flags().StringVar(&roundWind, "round", "east", "round wind")
		c.Flags().StringSliceVar(&options, "opt", nil, "table options: riichi, double-riichi, tsumo, ippatsu, last, rinshan, chankan, first")
	}
	batchCmd.Flags().StringVarP(&inputFile, "input", "i", "-", "input file, - for stdin")

	rootCmd.AddCommand(shantenCmd, yakuCmd, kindsCmd, batchCmd)
}

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
