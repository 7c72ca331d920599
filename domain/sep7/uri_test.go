package sep7

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDestination = "GBCOKLTKFJRR45RJBA336OE3ACKMFCLSODLHP6TTTNFVHVPXU7TW5U7F"

func TestRequestPayment_DestinationOnly(t *testing.T) {
	// Act
	uri := RequestPayment(PaymentRequest{Destination: testDestination})

	// Assert
	assert.Equal(t, "web+stellar:pay?destination="+testDestination, uri)
}

func TestRequestPayment_MemoEncoding(t *testing.T) {
	// Arrange
	req := PaymentRequest{
		Destination: testDestination,
		Amount:      "10",
		Memo:        "Just a tip :)",
	}

	// Act
	uri := RequestPayment(req)

	// Assert
	assert.Equal(t, "web+stellar:pay?destination="+testDestination+"&amount=10&memo=Just%20a%20tip%20%3A%29", uri)
	assert.NotContains(t, uri, "+a+")
}

func TestRequestPayment_AllParams(t *testing.T) {
	// Arrange
	req := PaymentRequest{
		Destination: testDestination,
		Amount:      "120.1234567",
		AssetCode:   "USD",
		AssetIssuer: "GCRCUE2C5TBNIPYHMEP7NK5RWTT2WBSZ75CMARH7GDOHDDCQH3XANFOB",
		Memo:        "MEMO",
		MemoType:    "MEMO_TEXT",
		Callback:    "url:https://someSigningService.com/a?b=c",
		Msg:         "pay me with lumens",
	}

	// Act
	uri := RequestPayment(req)

	// Assert
	assert.Equal(t, "web+stellar:pay?destination="+testDestination+
		"&amount=120.1234567"+
		"&asset_code=USD"+
		"&asset_issuer=GCRCUE2C5TBNIPYHMEP7NK5RWTT2WBSZ75CMARH7GDOHDDCQH3XANFOB"+
		"&memo=MEMO"+
		"&memo_type=MEMO_TEXT"+
		"&callback=url%3Ahttps%3A%2F%2FsomeSigningService.com%2Fa%3Fb%3Dc"+
		"&msg=pay%20me%20with%20lumens", uri)
}

func TestRequestPayment_NoValidation(t *testing.T) {
	// Act
	uri := RequestPayment(PaymentRequest{Destination: "not-an-account", Amount: "ten"})

	// Assert
	assert.Equal(t, "web+stellar:pay?destination=not-an-account&amount=ten", uri)
}

func TestEncodeURI_SkipsNilParams(t *testing.T) {
	keys := []string{"destination", "amount", "memo", "msg", "callback"}

	for _, skipped := range keys {
		t.Run(skipped, func(t *testing.T) {
			// Arrange
			var params []Param
			for _, k := range keys {
				if k == skipped {
					params = append(params, Param{Key: k})
					continue
				}
				params = append(params, Req(k, "v"))
			}

			// Act
			uri := EncodeURI("pay", params...)

			// Assert
			query := uri[strings.Index(uri, "?")+1:]
			for _, pair := range strings.Split(query, "&") {
				assert.NotEqual(t, skipped, strings.SplitN(pair, "=", 2)[0])
			}
		})
	}
}

func TestEncodeURI_KeepsOrderAndEmptyValues(t *testing.T) {
	// Act
	uri := EncodeURI("pay", Req("b", "2"), Param{Key: "skip"}, Req("a", ""), Req("c", "3"))

	// Assert
	assert.Equal(t, "web+stellar:pay?b=2&a=&c=3", uri)
}

func TestEncodeURI_NoParams(t *testing.T) {
	assert.Equal(t, "web+stellar:tx?", EncodeURI("tx"))
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"-_.~", "-_.~"},
		{"a/b", "a%2Fb"},
		{"k=v&x", "k%3Dv%26x"},
		{"café", "caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escape(tt.in))
		})
	}
}

func TestRequestTransaction(t *testing.T) {
	// Arrange
	req := TransactionRequest{
		XDR:          "AAAAAP+yw+ZEuNg533pUmwlYxfrq6/BoMJqiJ8vuQhf6rHWmAAAAZAB8NHAAAAABAAAAAA==",
		Callback:     "url:https://example.com/sign",
		OriginDomain: "example.com",
	}

	// Act
	uri := RequestTransaction(req)

	// Assert
	assert.Equal(t, "web+stellar:tx?xdr=AAAAAP%2Byw%2BZEuNg533pUmwlYxfrq6%2FBoMJqiJ8vuQhf6rHWmAAAAZAB8NHAAAAABAAAAAA%3D%3D"+
		"&callback=url%3Ahttps%3A%2F%2Fexample.com%2Fsign"+
		"&origin_domain=example.com", uri)
}
