package flow

import "fmt"

// CardType selects which branch of the checkout flow is built.
type CardType string

const (
	CardTypePhysical CardType = "Physical"
	CardTypeDigital  CardType = "Digital"
)

// ParseCardType validates a card type selector from the command line.
func ParseCardType(s string) (CardType, error) {
	switch CardType(s) {
	case CardTypePhysical, CardTypeDigital:
		return CardType(s), nil
	}
	return "", fmt.Errorf("invalid card type %q (must be %s or %s)", s, CardTypePhysical, CardTypeDigital)
}

// InputStructure describes the shape of the input a step collects.
type InputStructure string

const (
	InputSelect  InputStructure = "select"
	InputNumeric InputStructure = "numeric"
	InputText    InputStructure = "text"
	InputInfo    InputStructure = "info"
)

// ValueType describes the domain of a numeric step's value.
type ValueType string

const (
	ValueInteger  ValueType = "integer"
	ValueCurrency ValueType = "currency"
	ValueNone     ValueType = "none"
)

// Step is the static descriptor of one checkout step. It is built once per
// run and sent to the planning service as-is; it never appears in the output.
type Step struct {
	StepID                  string         `json:"step_id"`
	StepTitle               string         `json:"step_title"`
	StepKind                string         `json:"step_kind"`
	InputStructure          InputStructure `json:"input_structure"`
	ValueType               ValueType      `json:"value_type"`
	OptionsCount            int            `json:"options_count"`
	PriceSensitive          bool           `json:"price_sensitive"`
	HasValidationGuardrails bool           `json:"has_validation_guardrails"`
	HasPresets              bool           `json:"has_presets"`
	PresetCount             int            `json:"preset_count"`
	ParitySupported         bool           `json:"parity_supported"`
}

// BuildFlow returns the ordered step sequence for the given card type.
// The common prefix and the payment step are shared; the two steps before
// payment differ between the Digital and Physical branches.
func BuildFlow(cardType CardType) []Step {
	steps := []Step{
		{
			StepID:          "card_type",
			StepTitle:       "Select Card Type",
			StepKind:        "choice",
			InputStructure:  InputSelect,
			ValueType:       ValueNone,
			OptionsCount:    2,
			ParitySupported: true,
		},
		{
			StepID:          "variant",
			StepTitle:       "Card Variant",
			StepKind:        "choice",
			InputStructure:  InputSelect,
			ValueType:       ValueNone,
			OptionsCount:    2,
			ParitySupported: true,
		},
		{
			StepID:          "expiry",
			StepTitle:       "Expiry & Pricing",
			StepKind:        "choice",
			InputStructure:  InputSelect,
			ValueType:       ValueNone,
			OptionsCount:    3,
			PriceSensitive:  true,
			ParitySupported: true,
		},
		{
			StepID:          "design",
			StepTitle:       "Choose a Design",
			StepKind:        "design",
			InputStructure:  InputSelect,
			ValueType:       ValueNone,
			OptionsCount:    20,
			ParitySupported: true,
		},
		{
			StepID:          "activation",
			StepTitle:       "Delivery & Activation",
			StepKind:        "choice",
			InputStructure:  InputSelect,
			ValueType:       ValueNone,
			OptionsCount:    4,
			ParitySupported: true,
		},
		{
			StepID:          "packaging",
			StepTitle:       "Packaging",
			StepKind:        "choice",
			InputStructure:  InputSelect,
			ValueType:       ValueNone,
			OptionsCount:    3,
			PriceSensitive:  true,
			ParitySupported: true,
		},
		{
			StepID:                  "r1_qty",
			StepTitle:               "Recipient: Quantity",
			StepKind:                "number",
			InputStructure:          InputNumeric,
			ValueType:               ValueInteger,
			HasValidationGuardrails: true,
			HasPresets:              true,
			PresetCount:             5,
			ParitySupported:         true,
		},
		{
			StepID:                  "r1_amt",
			StepTitle:               "Recipient: Gift amount",
			StepKind:                "amount",
			InputStructure:          InputNumeric,
			ValueType:               ValueCurrency,
			PriceSensitive:          true,
			HasValidationGuardrails: true,
			HasPresets:              true,
			PresetCount:             6,
			ParitySupported:         true,
		},
		{
			StepID:          "r1_msg",
			StepTitle:       "Recipient: Gift message (optional)",
			StepKind:        "text",
			InputStructure:  InputText,
			ValueType:       ValueNone,
			ParitySupported: true,
		},
	}

	if cardType == CardTypeDigital {
		steps = append(steps,
			Step{
				StepID:          "digital_delivery",
				StepTitle:       "Digital Delivery Method",
				StepKind:        "choice",
				InputStructure:  InputSelect,
				ValueType:       ValueNone,
				OptionsCount:    2,
				ParitySupported: true,
			},
			Step{
				StepID:          "digital_identifier",
				StepTitle:       "Delivery Identifier",
				StepKind:        "info",
				InputStructure:  InputInfo,
				ValueType:       ValueNone,
				ParitySupported: true,
			},
		)
	} else {
		steps = append(steps,
			Step{
				StepID:          "shipping_method",
				StepTitle:       "Shipping Method",
				StepKind:        "choice",
				InputStructure:  InputSelect,
				ValueType:       ValueNone,
				OptionsCount:    2,
				PriceSensitive:  true,
				ParitySupported: true,
			},
			Step{
				StepID:          "shipping_address",
				StepTitle:       "Shipping Address",
				StepKind:        "info",
				InputStructure:  InputInfo,
				ValueType:       ValueNone,
				ParitySupported: true,
			},
		)
	}

	steps = append(steps, Step{
		StepID:          "payment",
		StepTitle:       "Payment Method",
		StepKind:        "choice",
		InputStructure:  InputSelect,
		ValueType:       ValueNone,
		OptionsCount:    2,
		ParitySupported: true,
	})

	return steps
}
