package generator

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/apollolabs/apollo/internal/record"
)

// fakerMethods maps "provider.method" names to gofakeit calls. The naming
// follows the provider/method pairs the CLI has always accepted
// (name.name, address.city, text.sentence, ...).
var fakerMethods = map[string]func(f *gofakeit.Faker) string{
	"name.name":              func(f *gofakeit.Faker) string { return f.Name() },
	"name.first_name":        func(f *gofakeit.Faker) string { return f.FirstName() },
	"name.last_name":         func(f *gofakeit.Faker) string { return f.LastName() },
	"name.prefix":            func(f *gofakeit.Faker) string { return f.NamePrefix() },
	"address.city":           func(f *gofakeit.Faker) string { return f.City() },
	"address.country":        func(f *gofakeit.Faker) string { return f.Country() },
	"address.street_address": func(f *gofakeit.Faker) string { return f.Street() },
	"address.postcode":       func(f *gofakeit.Faker) string { return f.Zip() },
	"internet.email":         func(f *gofakeit.Faker) string { return f.Email() },
	"internet.url":           func(f *gofakeit.Faker) string { return f.URL() },
	"internet.domain_name":   func(f *gofakeit.Faker) string { return f.DomainName() },
	"phone_number.phone_number": func(f *gofakeit.Faker) string {
		return f.PhoneFormatted()
	},
	"text.word":         func(f *gofakeit.Faker) string { return f.Word() },
	"text.sentence":     func(f *gofakeit.Faker) string { return f.Sentence(8) },
	"company.company":   func(f *gofakeit.Faker) string { return f.Company() },
	"company.job":       func(f *gofakeit.Faker) string { return f.JobTitle() },
	"company.bs":        func(f *gofakeit.Faker) string { return f.BuzzWord() },
	"color.color_name":  func(f *gofakeit.Faker) string { return f.Color() },
	"misc.uuid4":        func(f *gofakeit.Faker) string { return f.UUID() },
	"currency.currency": func(f *gofakeit.Faker) string { return f.CurrencyShort() },
}

// FakerGenerator delegates record values to gofakeit.
type FakerGenerator struct {
	faker  *gofakeit.Faker
	method func(f *gofakeit.Faker) string
}

// NewFakerGenerator resolves the provider/method pair. seed 0 means a
// random stream; any other value pins the output for reproducible runs.
func NewFakerGenerator(provider, method string, seed uint64) (*FakerGenerator, error) {
	fn, ok := fakerMethods[provider+"."+method]
	if !ok {
		return nil, &ProviderError{Provider: provider, Method: method}
	}
	return &FakerGenerator{faker: gofakeit.New(seed), method: fn}, nil
}

// FakerMethods lists the supported provider.method names, for help text.
func FakerMethods() []string {
	names := make([]string, 0, len(fakerMethods))
	for name := range fakerMethods {
		names = append(names, name)
	}
	return names
}

func (g *FakerGenerator) GenerateRecord() *record.Record {
	return record.Single("response", g.method(g.faker))
}

func (g *FakerGenerator) GenerateData(n int) []*record.Record {
	return Collect(g, n, nil)
}
