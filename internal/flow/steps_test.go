package flow

import (
	"reflect"
	"testing"
)

func stepIDs(steps []Step) []string {
	ids := make([]string, 0, len(steps))
	for _, s := range steps {
		ids = append(ids, s.StepID)
	}
	return ids
}

func TestBuildFlow_Physical(t *testing.T) {
	steps := BuildFlow(CardTypePhysical)

	want := []string{
		"card_type", "variant", "expiry", "design", "activation", "packaging",
		"r1_qty", "r1_amt", "r1_msg",
		"shipping_method", "shipping_address",
		"payment",
	}
	got := stepIDs(steps)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Physical flow ids = %v, want %v", got, want)
	}

	for _, s := range steps {
		if s.StepID == "digital_delivery" || s.StepID == "digital_identifier" {
			t.Errorf("Physical flow must not contain %s", s.StepID)
		}
	}
}

func TestBuildFlow_Digital(t *testing.T) {
	steps := BuildFlow(CardTypeDigital)

	want := []string{
		"card_type", "variant", "expiry", "design", "activation", "packaging",
		"r1_qty", "r1_amt", "r1_msg",
		"digital_delivery", "digital_identifier",
		"payment",
	}
	got := stepIDs(steps)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Digital flow ids = %v, want %v", got, want)
	}

	for _, s := range steps {
		if s.StepID == "shipping_method" || s.StepID == "shipping_address" {
			t.Errorf("Digital flow must not contain %s", s.StepID)
		}
	}
}

func TestBuildFlow_PaymentLast(t *testing.T) {
	for _, ct := range []CardType{CardTypePhysical, CardTypeDigital} {
		steps := BuildFlow(ct)
		if len(steps) == 0 {
			t.Fatalf("BuildFlow(%s) returned no steps", ct)
		}
		last := steps[len(steps)-1]
		if last.StepID != "payment" {
			t.Errorf("last step of %s flow = %s, want payment", ct, last.StepID)
		}
	}
}

func TestBuildFlow_Deterministic(t *testing.T) {
	for _, ct := range []CardType{CardTypePhysical, CardTypeDigital} {
		if !reflect.DeepEqual(BuildFlow(ct), BuildFlow(ct)) {
			t.Errorf("BuildFlow(%s) is not deterministic", ct)
		}
	}
}

func TestBuildFlow_DescriptorFields(t *testing.T) {
	steps := BuildFlow(CardTypePhysical)
	byID := make(map[string]Step, len(steps))
	for _, s := range steps {
		byID[s.StepID] = s
	}

	amt := byID["r1_amt"]
	if amt.InputStructure != InputNumeric || amt.ValueType != ValueCurrency {
		t.Errorf("r1_amt shape = %s/%s, want numeric/currency", amt.InputStructure, amt.ValueType)
	}
	if !amt.PriceSensitive || !amt.HasValidationGuardrails || !amt.HasPresets || amt.PresetCount != 6 {
		t.Errorf("r1_amt flags wrong: %+v", amt)
	}

	design := byID["design"]
	if design.OptionsCount != 20 {
		t.Errorf("design options = %d, want 20", design.OptionsCount)
	}

	for _, s := range steps {
		if !s.ParitySupported {
			t.Errorf("step %s must support modality parity", s.StepID)
		}
	}
}

func TestParseCardType(t *testing.T) {
	for _, valid := range []string{"Physical", "Digital"} {
		ct, err := ParseCardType(valid)
		if err != nil {
			t.Errorf("ParseCardType(%q) failed: %v", valid, err)
		}
		if string(ct) != valid {
			t.Errorf("ParseCardType(%q) = %s", valid, ct)
		}
	}

	for _, invalid := range []string{"", "physical", "Virtual", "both"} {
		if _, err := ParseCardType(invalid); err == nil {
			t.Errorf("ParseCardType(%q) should fail", invalid)
		}
	}
}
