package trade

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/bhslighting/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// Mailer sends transactional email. Implemented by the infrastructure
// layer over SMTP.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// confirmationTemplate renders the French order confirmation sent to
// the client after checkout
var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #b8860b;">BHS Lighting</h2>
  <p>Bonjour {{.ClientName}},</p>
  <p>Nous avons bien reçu votre commande <strong>{{.Code}}</strong>. En voici le récapitulatif :</p>
  <table style="width: 100%; border-collapse: collapse;">
    <thead>
      <tr>
        <th style="text-align: left; border-bottom: 1px solid #ddd; padding: 8px;">Produit</th>
        <th style="text-align: center; border-bottom: 1px solid #ddd; padding: 8px;">Quantité</th>
        <th style="text-align: right; border-bottom: 1px solid #ddd; padding: 8px;">Prix</th>
        <th style="text-align: right; border-bottom: 1px solid #ddd; padding: 8px;">Sous-total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Lines}}
      <tr>
        <td style="padding: 8px;">{{.Name}}</td>
        <td style="text-align: center; padding: 8px;">{{.Quantity}}</td>
        <td style="text-align: right; padding: 8px;">{{.UnitPrice}} TND</td>
        <td style="text-align: right; padding: 8px;">{{.LineTotal}} TND</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <p style="text-align: right; margin-top: 16px;">
    Sous-total : <strong>{{.Subtotal}} TND</strong><br>
    Frais de livraison : <strong>{{.ShippingCost}} TND</strong><br>
    Total : <strong>{{.Total}} TND</strong>
  </p>
  <p>Livraison à : {{.City}}</p>
  <p>Merci pour votre confiance,<br>L'équipe BHS Lighting</p>
</div>
`))

type confirmationLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type confirmationData struct {
	ClientName   string
	Code         string
	City         string
	Lines        []confirmationLine
	Subtotal     string
	ShippingCost string
	Total        string
}

// BuildConfirmationEmail formats the order confirmation from an
// OrderCreated event. Per-line subtotals use the discount price when
// set, the list price otherwise.
func BuildConfirmationEmail(event *trade.OrderCreatedEvent) (subject, body string, err error) {
	subtotal := decimal.Zero
	lines := make([]confirmationLine, len(event.Lines))
	for i, l := range event.Lines {
		unit := l.UnitPrice()
		lineTotal := unit.Mul(decimal.NewFromInt(int64(l.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		lines[i] = confirmationLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: unit.StringFixed(2),
			LineTotal: lineTotal.StringFixed(2),
		}
	}

	data := confirmationData{
		ClientName:   event.ClientName,
		Code:         event.Code,
		City:         event.City,
		Lines:        lines,
		Subtotal:     subtotal.StringFixed(2),
		ShippingCost: event.ShippingCost.StringFixed(2),
		Total:        subtotal.Add(event.ShippingCost).StringFixed(2),
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}

	subject = fmt.Sprintf("Confirmation de votre commande %s", event.Code)
	return subject, buf.String(), nil
}
