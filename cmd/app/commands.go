package main

import (
	"fmt"

	"github.com/prasetyowira/starsign/domain/payqr"
	"github.com/prasetyowira/starsign/domain/sep7"
	"github.com/prasetyowira/starsign/infrastructure/logger"
	"github.com/prasetyowira/starsign/infrastructure/scan"
	"github.com/spf13/cobra"
)

// renderFlags are the render options shared by pay and tx
type renderFlags struct {
	format     string
	out        string
	noWrite    bool
	logo       bool
	logoSize   int
	moduleSize int
	uriOnly    bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: png or svg (default from config)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output file (default output.<format>)")
	cmd.Flags().BoolVar(&f.noWrite, "no-write", false, "Render without writing a file")
	cmd.Flags().BoolVar(&f.logo, "logo", false, "Composite the logo in the centre (png only)")
	cmd.Flags().IntVar(&f.logoSize, "logo-size", 0, "Logo size in pixels (default from config)")
	cmd.Flags().IntVar(&f.moduleSize, "module-size", 0, "Pixels per QR module (default from config)")
	cmd.Flags().BoolVar(&f.uriOnly, "uri-only", false, "Print the URI and skip rendering")
}

// options merges the flags over the configured defaults
func (f *renderFlags) options(a *app) (payqr.Options, error) {
	name := a.cfg.Format
	if f.format != "" {
		name = f.format
	}
	format, err := payqr.ParseFormat(name)
	if err != nil {
		return payqr.Options{}, err
	}

	opts := payqr.DefaultOptions()
	opts.Format = format
	opts.Write = !f.noWrite
	opts.Filename = a.cfg.OutputFile
	opts.Logo = f.logo
	opts.LogoSize = a.cfg.LogoSize
	opts.ModuleSize = a.cfg.ModuleSize

	if f.out != "" {
		opts.Filename = f.out
	}
	if f.logoSize != 0 {
		opts.LogoSize = f.logoSize
	}
	if f.moduleSize != 0 {
		opts.ModuleSize = f.moduleSize
	}
	return opts, nil
}

func newPayCmd(a *app) *cobra.Command {
	var req sep7.PaymentRequest
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "pay [destination]",
		Short: "Build and render a payment request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Destination = args[0]
			if rf.uriOnly {
				fmt.Fprintln(cmd.OutOrStdout(), sep7.RequestPayment(req))
				return nil
			}

			opts, err := rf.options(a)
			if err != nil {
				return err
			}
			result, err := a.service.RequestPayment(logger.NewRequestContext(), req, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.URI)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Amount, "amount", "", "Amount to pay")
	cmd.Flags().StringVar(&req.AssetCode, "asset-code", "", "Asset code (omit for XLM)")
	cmd.Flags().StringVar(&req.AssetIssuer, "asset-issuer", "", "Asset issuer account")
	cmd.Flags().StringVar(&req.Memo, "memo", "", "Memo to attach")
	cmd.Flags().StringVar(&req.MemoType, "memo-type", "", "Memo type, e.g. MEMO_TEXT")
	cmd.Flags().StringVar(&req.Callback, "callback", "", "Callback URL, prefixed with url:")
	cmd.Flags().StringVar(&req.Msg, "msg", "", "Message shown to the payer")
	rf.register(cmd)

	return cmd
}

func newTxCmd(a *app) *cobra.Command {
	var req sep7.TransactionRequest
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "tx [xdr]",
		Short: "Build and render a transaction signing request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.XDR = args[0]
			if rf.uriOnly {
				fmt.Fprintln(cmd.OutOrStdout(), sep7.RequestTransaction(req))
				return nil
			}

			opts, err := rf.options(a)
			if err != nil {
				return err
			}
			result, err := a.service.RequestTransaction(logger.NewRequestContext(), req, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.URI)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Replace, "replace", "", "Fields of the transaction to replace")
	cmd.Flags().StringVar(&req.Callback, "callback", "", "Callback URL, prefixed with url:")
	cmd.Flags().StringVar(&req.Pubkey, "pubkey", "", "Account expected to sign")
	cmd.Flags().StringVar(&req.Chain, "chain", "", "Enclosing request URI")
	cmd.Flags().StringVar(&req.Msg, "msg", "", "Message shown to the signer")
	cmd.Flags().StringVar(&req.NetworkPassphrase, "network-passphrase", "", "Network passphrase")
	cmd.Flags().StringVar(&req.OriginDomain, "origin-domain", "", "Domain of the requesting service")
	cmd.Flags().StringVar(&req.Signature, "signature", "", "Signature over the request by the origin domain")
	rf.register(cmd)

	return cmd
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [image]",
		Short: "Decode the QR code in an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := scan.DecodeFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
