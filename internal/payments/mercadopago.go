package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// Gateway wraps the Mercado Pago checkout-preference flow used to pay
// bills. Amounts cross the boundary in paise and are converted to the
// gateway's decimal unit here, nowhere else.
type Gateway struct {
	prefs preference.Client
}

func NewGateway(accessToken string) (*Gateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Gateway{prefs: preference.NewClient(cfg)}, nil
}

type CheckoutInput struct {
	Reference   string
	Title       string
	AmountPaise int64
	PayerEmail  string
}

type Checkout struct {
	PreferenceID string
	URL          string
}

func (g *Gateway) CreateCheckout(ctx context.Context, in CheckoutInput) (*Checkout, error) {
	req := preference.Request{
		ExternalReference: in.Reference,
		Items: []preference.ItemRequest{
			{
				Title:      in.Title,
				Quantity:   1,
				UnitPrice:  float64(in.AmountPaise) / 100,
				CurrencyID: "INR",
			},
		},
		Payer: &preference.PayerRequest{
			Email: in.PayerEmail,
		},
	}

	resp, err := g.prefs.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Checkout{
		PreferenceID: resp.ID,
		URL:          resp.InitPoint,
	}, nil
}
