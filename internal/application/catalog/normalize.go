package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductForm is the raw multipart shape of a product submission.
// Structured fields travel as JSON-encoded text and references come in
// as a single id, an array, or a JSON-encoded string of either.
type ProductForm struct {
	Name             string
	Slug             string
	ShortDescription string
	Content          string
	SKU              string
	Sizes            string
	Price            string
	DiscountPrice    string
	Tax              string
	Stock            string
	Weight           string
	Dimensions       string
	Material         string
	Variants         string
	Tags             string
	Category         []string
	RelatedProducts  []string
	MetaSlug         string
	MetaTitle        string
	MetaDescription  string
	IsPublished      string
}

// NormalizeProductForm turns raw multipart fields into a strongly
// typed product input. Malformed JSON in a structured field is a
// validation error; a reference that is not a structurally valid id is
// silently discarded; numeric fields default to zero except the
// required price.
func NormalizeProductForm(form ProductForm) (ProductInput, error) {
	var input ProductInput

	if form.Name == "" {
		return input, shared.NewDomainError("INVALID_NAME", "Product name is required")
	}
	if form.Price == "" {
		return input, shared.NewDomainError("INVALID_PRICE", "Product price is required")
	}
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return input, shared.NewDomainError("INVALID_PRICE", "Product price must be a number")
	}

	input.Name = form.Name
	input.Slug = form.Slug
	if input.Slug == "" {
		input.Slug = shared.Slugify(form.Name)
	}
	input.ShortDescription = form.ShortDescription
	input.Content = form.Content
	input.SKU = form.SKU
	input.Sizes = form.Sizes
	input.MetaSlug = form.MetaSlug
	input.MetaTitle = form.MetaTitle
	input.MetaDescription = form.MetaDescription

	input.Price = price
	input.DiscountPrice = decimalOrZero(form.DiscountPrice)
	input.Tax = decimalOrZero(form.Tax)
	input.Weight = decimalOrZero(form.Weight)
	input.Stock = intOrZero(form.Stock)
	input.IsPublished, _ = strconv.ParseBool(form.IsPublished)

	if err := decodeJSONField("dimensions", form.Dimensions, &input.Dimensions); err != nil {
		return input, err
	}
	if err := decodeJSONField("material", form.Material, &input.Material); err != nil {
		return input, err
	}
	if err := decodeJSONField("variants", form.Variants, &input.Variants); err != nil {
		return input, err
	}
	if err := decodeJSONField("tags", form.Tags, &input.Tags); err != nil {
		return input, err
	}

	input.CategoryIDs, err = parseIDList("category", form.Category)
	if err != nil {
		return input, err
	}
	input.RelatedIDs, err = parseIDList("relatedProducts", form.RelatedProducts)
	if err != nil {
		return input, err
	}

	return input, nil
}

// parseIDList flattens the accepted reference encodings into ids,
// discarding values that are not structurally valid
func parseIDList(field string, values []string) ([]uuid.UUID, error) {
	var candidates []string
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		switch {
		case strings.HasPrefix(raw, "["):
			var arr []string
			if err := json.Unmarshal([]byte(raw), &arr); err != nil {
				return nil, shared.NewDomainError("INVALID_INPUT", "Field "+field+" is not valid JSON")
			}
			candidates = append(candidates, arr...)
		case strings.HasPrefix(raw, `"`):
			var s string
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				return nil, shared.NewDomainError("INVALID_INPUT", "Field "+field+" is not valid JSON")
			}
			candidates = append(candidates, s)
		default:
			candidates = append(candidates, raw)
		}
	}

	var ids []uuid.UUID
	for _, c := range candidates {
		id, err := uuid.Parse(strings.TrimSpace(c))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func decodeJSONField(field, raw string, out any) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return shared.NewDomainError("INVALID_INPUT", "Field "+field+" is not valid JSON")
	}
	return nil
}

func decimalOrZero(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func intOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
