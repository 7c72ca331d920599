// Package sep7 builds web+stellar request URIs as described by SEP-0007
// (https://github.com/stellar/stellar-protocol/blob/master/ecosystem/sep-0007.md).
//
// Nothing here validates parameter values. Destinations, amounts and memos
// are copied into the URI as given; checking them is left to the caller and
// to the wallet that consumes the URI.
package sep7

import (
	"net/url"
	"strings"

	"github.com/prasetyowira/starsign/constant"
)

// Param is a single query parameter. A nil Value means the parameter is
// absent and is left out of the URI entirely.
type Param struct {
	Key   string
	Value *string
}

// Opt returns a Param that is present only when value is non-empty
func Opt(key, value string) Param {
	if value == "" {
		return Param{Key: key}
	}
	return Param{Key: key, Value: &value}
}

// Req returns a Param that is always present, even when value is empty
func Req(key, value string) Param {
	return Param{Key: key, Value: &value}
}

// PaymentRequest holds the parameters of the "pay" operation. Optional
// fields are omitted from the URI when empty.
type PaymentRequest struct {
	Destination string
	Amount      string
	AssetCode   string
	AssetIssuer string
	Memo        string
	MemoType    string
	Callback    string
	Msg         string
}

// TransactionRequest holds the parameters of the "tx" operation. Optional
// fields are omitted from the URI when empty.
type TransactionRequest struct {
	XDR               string
	Replace           string
	Callback          string
	Pubkey            string
	Chain             string
	Msg               string
	NetworkPassphrase string
	OriginDomain      string
	Signature         string
}

// EncodeURI builds "web+stellar:<operation>?<query>". Params with a nil value
// are skipped, the rest keep their order.
func EncodeURI(operation string, params ...Param) string {
	var b strings.Builder
	b.WriteString(constant.URIScheme)
	b.WriteByte(':')
	b.WriteString(operation)
	b.WriteByte('?')

	first := true
	for _, p := range params {
		if p.Value == nil {
			continue
		}
		if !first {
			b.WriteByte('&')
		}
		first = false
		b.WriteString(escape(p.Key))
		b.WriteByte('=')
		b.WriteString(escape(*p.Value))
	}

	return b.String()
}

// RequestPayment builds the URI for a "pay" operation
func RequestPayment(req PaymentRequest) string {
	return EncodeURI(constant.OperationPay,
		Req(constant.ParamDestination, req.Destination),
		Opt(constant.ParamAmount, req.Amount),
		Opt(constant.ParamAssetCode, req.AssetCode),
		Opt(constant.ParamAssetIssuer, req.AssetIssuer),
		Opt(constant.ParamMemo, req.Memo),
		Opt(constant.ParamMemoType, req.MemoType),
		Opt(constant.ParamCallback, req.Callback),
		Opt(constant.ParamMsg, req.Msg),
	)
}

// RequestTransaction builds the URI for a "tx" operation
func RequestTransaction(req TransactionRequest) string {
	return EncodeURI(constant.OperationTx,
		Req(constant.ParamXDR, req.XDR),
		Opt(constant.ParamReplace, req.Replace),
		Opt(constant.ParamCallback, req.Callback),
		Opt(constant.ParamPubkey, req.Pubkey),
		Opt(constant.ParamChain, req.Chain),
		Opt(constant.ParamMsg, req.Msg),
		Opt(constant.ParamNetworkPassphrase, req.NetworkPassphrase),
		Opt(constant.ParamOriginDomain, req.OriginDomain),
		Opt(constant.ParamSignature, req.Signature),
	)
}

// escape percent-encodes everything except A-Z a-z 0-9 - _ . ~
// QueryEscape already escapes a literal '+' as %2B, so the only '+' left in
// its output stands for a space.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
