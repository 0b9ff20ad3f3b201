package bitcoin

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

const paymentScheme = "bitcoin"

// PaymentRequest is a destination read from a bare address or a bitcoin: URI.
type PaymentRequest struct {
	Address string
	// Amount is zero when the URI carries none.
	Amount  btcutil.Amount
	Label   string
	Message string
}

// ParsePaymentAddress strips the bitcoin: scheme and reads the amount, label and
// message parameters. A string without a scheme is taken as a bare address.
func ParsePaymentAddress(s string) (PaymentRequest, error) {
	s = strings.TrimSpace(s)
	scheme, rest, found := strings.Cut(s, ":")
	if !found {
		return PaymentRequest{Address: s}, nil
	}
	if !strings.EqualFold(scheme, paymentScheme) {
		return PaymentRequest{}, fmt.Errorf("%w: scheme %q", ErrInvalidPaymentAddress, scheme)
	}

	address, rawQuery, _ := strings.Cut(rest, "?")
	address = strings.TrimPrefix(address, "//")
	if address == "" {
		return PaymentRequest{}, fmt.Errorf("%w: empty address", ErrInvalidPaymentAddress)
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return PaymentRequest{}, fmt.Errorf("%w: %w", ErrInvalidPaymentAddress, err)
	}

	request := PaymentRequest{Address: address, Label: query.Get("label"), Message: query.Get("message")}
	if raw := query.Get("amount"); raw != "" {
		btc, err := strconv.ParseFloat(raw, 64)
		if err != nil || btc < 0 {
			return PaymentRequest{}, fmt.Errorf("%w: amount %q", ErrInvalidPaymentAddress, raw)
		}
		if request.Amount, err = btcutil.NewAmount(btc); err != nil {
			return PaymentRequest{}, fmt.Errorf("%w: amount %q: %w", ErrInvalidPaymentAddress, raw, err)
		}
	}
	return request, nil
}
