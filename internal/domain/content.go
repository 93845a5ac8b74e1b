package domain

// TypedContent is the sample-type specific half of a part's content.
// Exactly one implementation exists per SampleType.
type TypedContent interface {
	SampleType() SampleType
}

// BacteriumContent holds fields that only bacteria carry.
type BacteriumContent struct {
	PlasmidName *string
	HostStrain  *string
	Markers     []string
}

func (BacteriumContent) SampleType() SampleType { return SampleTypeBacterium }

// PrimerContent holds fields that only primers carry.
type PrimerContent struct {
	Sequence           *string
	Orientation        *string
	MeltingTemperature *float64
	Concentration      *string
	Vendor             *string
}

func (PrimerContent) SampleType() SampleType { return SampleTypePrimer }

// YeastContent holds fields that only yeast strains carry.
type YeastContent struct {
	Parents     []string
	Genotype    []string
	PlasmidType *string
	Markers     []string
}

func (YeastContent) SampleType() SampleType { return SampleTypeYeast }

// OtherContent is used for parts without type-specific fields.
type OtherContent struct{}

func (OtherContent) SampleType() SampleType { return SampleTypeOther }

// Content is a part's variant payload plus the custom data shared by all types.
type Content struct {
	Typed      TypedContent
	CustomData map[string]any
}

// ContentFields is the flat union of every type-specific field. It is the
// shape content has on the wire and in stored documents.
type ContentFields struct {
	PlasmidName        *string        `json:"plasmidName,omitempty"`
	HostStrain         *string        `json:"hostStrain,omitempty"`
	Markers            []string       `json:"markers,omitempty"`
	Sequence           *string        `json:"sequence,omitempty"`
	Orientation        *string        `json:"orientation,omitempty"`
	MeltingTemperature *float64       `json:"meltingTemperature,omitempty"`
	Concentration      *string        `json:"concentration,omitempty"`
	Vendor             *string        `json:"vendor,omitempty"`
	Parents            []string       `json:"parents,omitempty"`
	Genotype           []string       `json:"genotype,omitempty"`
	PlasmidType        *string        `json:"plasmidType,omitempty"`
	CustomData         map[string]any `json:"customData,omitempty"`
}

// Project keeps the fields valid for t and drops the rest.
func (f ContentFields) Project(t SampleType) Content {
	c := Content{CustomData: f.CustomData}

	switch t {
	case SampleTypeBacterium:
		c.Typed = BacteriumContent{
			PlasmidName: f.PlasmidName,
			HostStrain:  f.HostStrain,
			Markers:     f.Markers,
		}
	case SampleTypePrimer:
		c.Typed = PrimerContent{
			Sequence:           f.Sequence,
			Orientation:        f.Orientation,
			MeltingTemperature: f.MeltingTemperature,
			Concentration:      f.Concentration,
			Vendor:             f.Vendor,
		}
	case SampleTypeYeast:
		c.Typed = YeastContent{
			Parents:     f.Parents,
			Genotype:    f.Genotype,
			PlasmidType: f.PlasmidType,
			Markers:     f.Markers,
		}
	default:
		c.Typed = OtherContent{}
	}

	return c
}

// Flatten converts Content back into its flat representation.
func (c Content) Flatten() ContentFields {
	f := ContentFields{CustomData: c.CustomData}

	switch v := c.Typed.(type) {
	case BacteriumContent:
		f.PlasmidName = v.PlasmidName
		f.HostStrain = v.HostStrain
		f.Markers = v.Markers
	case PrimerContent:
		f.Sequence = v.Sequence
		f.Orientation = v.Orientation
		f.MeltingTemperature = v.MeltingTemperature
		f.Concentration = v.Concentration
		f.Vendor = v.Vendor
	case YeastContent:
		f.Parents = v.Parents
		f.Genotype = v.Genotype
		f.PlasmidType = v.PlasmidType
		f.Markers = v.Markers
	case OtherContent, nil:
	}

	return f
}
