package schema

//go:generate go tool stringer -type=FieldKind -output=kind_string.go

// FieldKind is the closed set of attribute types understood by the projector.
type FieldKind int

const (
	KindUnknown FieldKind = iota // any tag outside the known set, RawType keeps the original

	KindString
	KindText
	KindRichText
	KindEmail
	KindPassword
	KindUID
	KindInteger
	KindFloat
	KindDecimal
	KindBigInteger
	KindBoolean
	KindDate
	KindDateTime
	KindTime
	KindTimestamp
	KindEnumeration
	KindJSON
	KindRelation
	KindComponent
	KindDynamicZone
	KindMedia

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindsByTag = map[string]FieldKind{
	"string":      KindString,
	"text":        KindText,
	"richtext":    KindRichText,
	"email":       KindEmail,
	"password":    KindPassword,
	"uid":         KindUID,
	"integer":     KindInteger,
	"float":       KindFloat,
	"decimal":     KindDecimal,
	"biginteger":  KindBigInteger,
	"boolean":     KindBoolean,
	"date":        KindDate,
	"datetime":    KindDateTime,
	"time":        KindTime,
	"timestamp":   KindTimestamp,
	"enumeration": KindEnumeration,
	"json":        KindJSON,
	"relation":    KindRelation,
	"component":   KindComponent,
	"dynamiczone": KindDynamicZone,
	"media":       KindMedia,
}

// ParseFieldKind maps an on-disk "type" tag to its kind. Unknown tags yield KindUnknown.
func ParseFieldKind(tag string) FieldKind {
	if k, ok := kindsByTag[tag]; ok {
		return k
	}

	return KindUnknown
}

func (k FieldKind) IsStringLike() bool {
	switch k {
	default:
		return false
	case KindString, KindText, KindRichText, KindEmail, KindPassword, KindUID:
		return true
	}
}

func (k FieldKind) IsNumeric() bool {
	switch k {
	default:
		return false
	case KindInteger, KindFloat, KindDecimal, KindBigInteger:
		return true
	}
}

func (k FieldKind) IsDateLike() bool {
	switch k {
	default:
		return false
	case KindDate, KindDateTime, KindTime, KindTimestamp:
		return true
	}
}

// Cardinality tells whether a relation resolves to one or many targets.
type Cardinality int

const (
	CardinalityUnknown Cardinality = iota
	CardinalityToOne
	CardinalityToMany
)

var cardinalities = map[string]Cardinality{
	"oneToOne":    CardinalityToOne,
	"manyToOne":   CardinalityToOne,
	"oneWay":      CardinalityToOne,
	"morphToOne":  CardinalityToOne,
	"morphOne":    CardinalityToOne,
	"oneToMany":   CardinalityToMany,
	"manyToMany":  CardinalityToMany,
	"manyWay":     CardinalityToMany,
	"morphToMany": CardinalityToMany,
	"morphMany":   CardinalityToMany,
}

// ParseCardinality maps a relation vocabulary word (e.g. "oneToMany") to a cardinality.
func ParseCardinality(relation string) Cardinality {
	return cardinalities[relation]
}

func (c Cardinality) String() string {
	switch c {
	case CardinalityToOne:
		return "to-one"
	case CardinalityToMany:
		return "to-many"
	default:
		return "unknown"
	}
}
