package main

import (
	"fmt"
	"os"

	"github.com/prasetyowira/starsign/config"
	"github.com/prasetyowira/starsign/constant"
	"github.com/prasetyowira/starsign/domain/payqr"
	"github.com/prasetyowira/starsign/domain/sep7"
	"github.com/prasetyowira/starsign/infrastructure/logger"
	"github.com/prasetyowira/starsign/infrastructure/logo"
	"github.com/prasetyowira/starsign/infrastructure/qrcode"
	"github.com/spf13/cobra"
)

const demoDestination = "GBCOKLTKFJRR45RJBA336OE3ACKMFCLSODLHP6TTTNFVHVPXU7TW5U7F"

// app carries what every command needs once configuration is loaded
type app struct {
	cfg     config.Config
	service *payqr.Service
}

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and flushes the logger whether or not it failed
func execute(cmd *cobra.Command) error {
	defer logger.Close()
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configPath string

	root := &cobra.Command{
		Use:          "starsign",
		Short:        "Render Stellar SEP-0007 request URIs as QR codes",
		Long:         "Without a subcommand, renders an example payment request with the Stellar logo to output.png.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "starsign.yaml", "Path to config file")

	root.AddCommand(newPayCmd(a))
	root.AddCommand(newTxCmd(a))
	root.AddCommand(newScanCmd())

	return root
}

func (a *app) setup(configPath string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", constant.MsgFailedToLoadConfig, err)
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("%s: %w", constant.MsgFailedToLoadConfig, err)
	}
	logger.Initialize(cfg.IsProduction(), level)

	logger.Debug(constant.MsgApplicationStarting, logger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataEnvironment: cfg.Environment,
			constant.DataConfig:      configPath,
		},
	})

	asset, err := loadAsset(cfg.LogoPath)
	if err != nil {
		logger.Error(constant.MsgFailedToLoadLogo, logger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeAppLogo,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
			Data: map[string]interface{}{
				constant.DataPath: cfg.LogoPath,
			},
		})
		return err
	}

	a.service = payqr.NewService(qrcode.NewRenderer(asset))
	return nil
}

func loadAsset(path string) (*logo.Asset, error) {
	if path == "" {
		return logo.Default()
	}
	return logo.Load(path)
}

// runDemo renders the example tip request with the logo to the default file
func (a *app) runDemo(cmd *cobra.Command) error {
	ctx := logger.NewRequestContext()

	opts := payqr.DefaultOptions()
	opts.Logo = true
	opts.Write = true
	opts.LogoSize = a.cfg.LogoSize
	opts.ModuleSize = a.cfg.ModuleSize

	result, err := a.service.RequestPayment(ctx, sep7.PaymentRequest{
		Destination: demoDestination,
		Amount:      sep7.FormatAmount(10 * sep7.StroopsPerUnit),
		Memo:        "Just a tip :)",
	}, opts)
	if err != nil {
		logger.CtxError(ctx, constant.MsgRequestFailed, logger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeAppRender,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
		return err
	}

	logger.CtxInfo(ctx, constant.MsgDemoFinished, logger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataFilename: opts.OutputFilename(),
		},
	})

	fmt.Fprintln(cmd.OutOrStdout(), result.URI)
	return nil
}
