package pricing

import "math"

// Config is one fully-specified window covering. Zero values mean "not
// chosen": empty strings fall back to standard choices, false flags add
// nothing.
type Config struct {
	ProductType  string  // faux-wood | wood | cellular | roller | roman | vertical | aluminum | woven
	Width        float64 // inches
	Height       float64 // inches
	SlatSize     string  // "2" | "2.5"
	MountType    string  // inside | outside (no price effect)
	ControlType  string  // standard | cordless | motorized
	HeadrailType string  // standard | deluxe
	Opacity      string  // light-filtering | room-darkening | blackout
	ClothTape    bool
	CordTilt     bool
	ProInstall   bool
	ProMeasure   bool
	Expedited    bool
}

// Breakdown itemizes every price component so a UI can show each term
// and tests can verify them independently. BasePrice already includes
// the 2.5" slat surcharge when present.
type Breakdown struct {
	BasePrice      float64 `json:"basePrice"`
	SizeAdjustment float64 `json:"sizeAdjustment"`
	ControlPrice   float64 `json:"controlPrice"`
	HeadrailPrice  float64 `json:"headrailPrice"`
	ClothTapePrice float64 `json:"clothTapePrice"`
	OpacityPrice   float64 `json:"opacityPrice"`
	CordTiltPrice  float64 `json:"cordTiltPrice"`
	InstallPrice   float64 `json:"installPrice"`
	MeasurePrice   float64 `json:"measurePrice"`
	ExpeditedPrice float64 `json:"expeditedPrice"`
	Total          float64 `json:"total"`
}

// Base prices per product type. Unknown types price as faux-wood.
var basePrices = map[string]float64{
	"faux-wood": 39.99,
	"wood":      129.99,
	"cellular":  89.99,
	"roller":    49.99,
	"roman":     79.99,
	"vertical":  59.99,
	"aluminum":  34.99,
	"woven":     99.99,
}

const defaultBasePrice = 39.99 // faux-wood fallback

// Size surcharge: free up to 1500 sq in, then 5.00 per started 500 sq in.
const (
	includedArea  = 1500.0
	areaStep      = 500.0
	areaStepPrice = 5.0
)

var controlPrices = map[string]float64{
	"standard":  0,
	"cordless":  25,
	"motorized": 120,
}

var opacityPrices = map[string]float64{
	"light-filtering": 0,
	"room-darkening":  10,
	"blackout":        25,
}

const (
	deluxeHeadrailPrice = 15
	clothTapePrice      = 18.99
	cordTiltPrice       = 5
	proInstallPrice     = 79.99
	proMeasurePrice     = 39.99
	largeSlatSurcharge  = 10   // 2.5" slats, folded into BasePrice
	expeditedRate       = 0.25 // of base price only
)

// FromOptions builds a Config from a cart item's dynamic option bag.
// Unrecognized option names are ignored by pricing (they still count
// toward item identity).
func FromOptions(productType string, width, height float64, options map[string]string) Config {
	cfg := Config{
		ProductType:  productType,
		Width:        width,
		Height:       height,
		SlatSize:     options["slatSize"],
		MountType:    options["mountType"],
		ControlType:  options["controlType"],
		HeadrailType: options["headrailType"],
		Opacity:      options["opacity"],
		ClothTape:    options["clothTape"] == "true",
		CordTilt:     options["cordTilt"] == "true",
		ProInstall:   options["proInstall"] == "true",
		ProMeasure:   options["proMeasure"] == "true",
		Expedited:    options["expedited"] == "true",
	}
	return cfg
}

// Calculate prices one configuration. Pure and deterministic: the same
// config always yields the same breakdown.
func Calculate(cfg Config) Breakdown {
	base, ok := basePrices[cfg.ProductType]
	if !ok {
		base = defaultBasePrice
	}
	if cfg.SlatSize == "2.5" {
		base += largeSlatSurcharge
	}

	var size float64
	if area := cfg.Width * cfg.Height; area > includedArea {
		size = areaStepPrice * math.Ceil((area-includedArea)/areaStep)
	}

	b := Breakdown{
		BasePrice:      base,
		SizeAdjustment: size,
		ControlPrice:   controlPrices[cfg.ControlType],
		OpacityPrice:   opacityPrices[cfg.Opacity],
	}
	if cfg.HeadrailType == "deluxe" {
		b.HeadrailPrice = deluxeHeadrailPrice
	}
	if cfg.ClothTape {
		b.ClothTapePrice = clothTapePrice
	}
	if cfg.CordTilt {
		b.CordTiltPrice = cordTiltPrice
	}
	if cfg.ProInstall {
		b.InstallPrice = proInstallPrice
	}
	if cfg.ProMeasure {
		b.MeasurePrice = proMeasurePrice
	}
	if cfg.Expedited {
		b.ExpeditedPrice = expeditedRate * base
	}

	b.Total = b.BasePrice + b.SizeAdjustment + b.ControlPrice +
		b.HeadrailPrice + b.ClothTapePrice + b.OpacityPrice +
		b.CordTiltPrice + b.InstallPrice + b.MeasurePrice + b.ExpeditedPrice
	return b
}

// CalculateForBase prices a configuration whose base price comes from
// the catalog rather than the product-type table. The extras computed by
// Calculate are preserved as a delta on top of the supplied base:
// total = basePrice + (engine total - engine base).
func CalculateForBase(basePrice float64, cfg Config) Breakdown {
	b := Calculate(cfg)
	delta := b.Total - b.BasePrice
	b.BasePrice = basePrice
	b.Total = basePrice + delta
	return b
}
