package hematology

import (
	"strings"

	"github.com/hemoscan/hemoscan/internal/domain/record"
)

// NormalizeRecord coerces a raw row into a ClinicalRecord. Sex is
// required and never defaulted; every measurement defaults to 0 and is
// floored at 0 so the record only carries finite non-negative values.
func NormalizeRecord(raw record.Raw) (*ClinicalRecord, error) {
	sex, err := parseSex(raw)
	if err != nil {
		return nil, err
	}
	r := &ClinicalRecord{
		Sex:         sex,
		Age:         record.Int(raw, "age", 0),
		Hemoglobin:  measurement(raw, "hemoglobin"),
		RBC:         measurement(raw, "rbc"),
		Hematocrit:  measurement(raw, "hematocrit"),
		MCV:         measurement(raw, "mcv"),
		MCH:         measurement(raw, "mch"),
		MCHC:        measurement(raw, "mchc"),
		RDW:         measurement(raw, "rdw"),
		WBC:         measurement(raw, "wbc"),
		Platelets:   measurement(raw, "platelets"),
		Neutrophils: measurement(raw, "neutrophils"),
		Lymphocytes: measurement(raw, "lymphocytes"),
		Monocytes:   measurement(raw, "monocytes"),
		Eosinophils: measurement(raw, "eosinophils"),
		Basophils:   measurement(raw, "basophils"),
	}
	if r.Age < 0 {
		r.Age = 0
	}
	return r, nil
}

func measurement(raw record.Raw, key string) float64 {
	f := record.Float(raw, key, 0)
	if f < 0 {
		return 0
	}
	return f
}

func parseSex(raw record.Raw) (Sex, error) {
	s, ok := record.String(raw, "sex")
	if !ok || s == "" {
		return "", record.Missing("sex")
	}
	switch strings.ToLower(s) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	}
	return "", record.Invalid("sex", "must be male or female")
}
