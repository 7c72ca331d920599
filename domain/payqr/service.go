package payqr

import (
	"context"
	"errors"

	"github.com/prasetyowira/starsign/constant"
	"github.com/prasetyowira/starsign/domain/sep7"
	"github.com/prasetyowira/starsign/infrastructure/logger"
)

// Renderer turns a URI into an image
type Renderer interface {
	Render(ctx context.Context, uri string, opts Options) (*Rendered, error)
}

// Result is the outcome of a request: the URI and its rendered QR code
type Result struct {
	URI   string
	Image *Rendered
}

// Service builds request URIs and renders them
type Service struct {
	renderer Renderer
}

// NewService creates a new request service
func NewService(renderer Renderer) *Service {
	logger.Debug("Creating request service", logger.LoggerInfo{
		ContextFunction: constant.CtxDomain,
		Data: map[string]interface{}{
			constant.DataService: "payqr",
		},
	})

	return &Service{
		renderer: renderer,
	}
}

// RequestPayment builds a "pay" URI for req and renders it
func (s *Service) RequestPayment(ctx context.Context, req sep7.PaymentRequest, opts Options) (*Result, error) {
	uri := sep7.RequestPayment(req)

	logger.CtxDebug(ctx, "Payment URI built", logger.LoggerInfo{
		ContextFunction: constant.CtxRequestPayment,
		Data: map[string]interface{}{
			constant.DataOperation: constant.OperationPay,
			constant.DataURI:       uri,
		},
	})

	return s.render(ctx, constant.CtxRequestPayment, uri, opts)
}

// RequestTransaction builds a "tx" URI for req and renders it
func (s *Service) RequestTransaction(ctx context.Context, req sep7.TransactionRequest, opts Options) (*Result, error) {
	uri := sep7.RequestTransaction(req)

	logger.CtxDebug(ctx, "Transaction URI built", logger.LoggerInfo{
		ContextFunction: constant.CtxRequestTransaction,
		Data: map[string]interface{}{
			constant.DataOperation: constant.OperationTx,
			constant.DataURI:       uri,
		},
	})

	return s.render(ctx, constant.CtxRequestTransaction, uri, opts)
}

func (s *Service) render(ctx context.Context, fn, uri string, opts Options) (*Result, error) {
	img, err := s.renderer.Render(ctx, uri, opts)
	if err != nil {
		code, typ := constant.ErrCodeRenderFailure, constant.ErrTypeRender
		if errors.Is(err, ErrInvalidConfiguration) {
			code, typ = constant.ErrCodeInvalidConfiguration, constant.ErrTypeValidation
		}
		logger.CtxError(ctx, "Failed to render request", logger.LoggerInfo{
			ContextFunction: fn,
			Error: &logger.CustomError{
				Code:    code,
				Message: err.Error(),
				Type:    typ,
			},
			Data: map[string]interface{}{
				constant.DataURI:    uri,
				constant.DataFormat: opts.Format.String(),
				constant.DataLogo:   opts.Logo,
			},
		})
		return nil, err
	}

	logger.CtxInfo(ctx, "Request rendered", logger.LoggerInfo{
		ContextFunction: fn,
		Data: map[string]interface{}{
			constant.DataURI:   uri,
			constant.DataKind:  img.Kind.String(),
			constant.DataWrite: opts.Write,
		},
	})

	return &Result{URI: uri, Image: img}, nil
}
