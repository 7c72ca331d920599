package payqr

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/prasetyowira/starsign/domain/sep7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock renderer for testing
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, uri string, opts Options) (*Rendered, error) {
	args := m.Called(ctx, uri, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Rendered), args.Error(1)
}

const testDestination = "GBCOKLTKFJRR45RJBA336OE3ACKMFCLSODLHP6TTTNFVHVPXU7TW5U7F"

func TestNewService(t *testing.T) {
	// Arrange
	mockRenderer := new(MockRenderer)

	// Act
	service := NewService(mockRenderer)

	// Assert
	assert.NotNil(t, service)
	assert.Equal(t, mockRenderer, service.renderer)
}

func TestRequestPayment_Success(t *testing.T) {
	// Arrange
	mockRenderer := new(MockRenderer)
	service := NewService(mockRenderer)

	req := sep7.PaymentRequest{Destination: testDestination, Amount: "10", Memo: "Just a tip :)"}
	opts := DefaultOptions()
	opts.Logo = true
	wantURI := "web+stellar:pay?destination=" + testDestination + "&amount=10&memo=Just%20a%20tip%20%3A%29"
	rendered := &Rendered{Kind: KindLogoBitmap, Format: FormatPNG, Raster: image.NewGray(image.Rect(0, 0, 1, 1))}

	mockRenderer.On("Render", mock.Anything, wantURI, opts).Return(rendered, nil)

	// Act
	result, err := service.RequestPayment(context.Background(), req, opts)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, wantURI, result.URI)
	assert.Same(t, rendered, result.Image)
	mockRenderer.AssertExpectations(t)
}

func TestRequestPayment_InvalidConfiguration(t *testing.T) {
	// Arrange
	mockRenderer := new(MockRenderer)
	service := NewService(mockRenderer)

	opts := DefaultOptions()
	opts.Format = FormatSVG
	opts.Logo = true
	_, kindErr := opts.Kind()

	mockRenderer.On("Render", mock.Anything, mock.AnythingOfType("string"), opts).Return(nil, kindErr)

	// Act
	result, err := service.RequestPayment(context.Background(), sep7.PaymentRequest{Destination: testDestination}, opts)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, result)
	mockRenderer.AssertExpectations(t)
}

func TestRequestPayment_RenderError(t *testing.T) {
	// Arrange
	mockRenderer := new(MockRenderer)
	service := NewService(mockRenderer)

	expectedError := errors.New("content too long to encode")
	mockRenderer.On("Render", mock.Anything, mock.Anything, mock.Anything).Return(nil, expectedError)

	// Act
	result, err := service.RequestPayment(context.Background(), sep7.PaymentRequest{Destination: testDestination}, DefaultOptions())

	// Assert
	assert.Equal(t, expectedError, err)
	assert.Nil(t, result)
	mockRenderer.AssertExpectations(t)
}

func TestRequestTransaction_Success(t *testing.T) {
	// Arrange
	mockRenderer := new(MockRenderer)
	service := NewService(mockRenderer)

	opts := DefaultOptions()
	opts.Format = FormatSVG
	rendered := &Rendered{Kind: KindVector, Format: FormatSVG, Vector: []byte("<svg/>")}

	mockRenderer.On("Render", mock.Anything, "web+stellar:tx?xdr=AAAA&msg=sign%20me", opts).Return(rendered, nil)

	// Act
	result, err := service.RequestTransaction(context.Background(), sep7.TransactionRequest{XDR: "AAAA", Msg: "sign me"}, opts)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "web+stellar:tx?xdr=AAAA&msg=sign%20me", result.URI)
	assert.Equal(t, KindVector, result.Image.Kind)
	mockRenderer.AssertExpectations(t)
}
