package token

// ScalarType tags the built-in scalar type names. The tag doubles as the
// value slot of the corresponding keyword kind.
type ScalarType uint8

const (
	ScalarNone ScalarType = iota
	ScalarBit
	ScalarTinyInt
	ScalarSmallInt
	ScalarInt
	ScalarBigInt
	ScalarDecimal
	ScalarNumeric
	ScalarMoney
	ScalarSmallMoney
	ScalarFloat
	ScalarReal
	ScalarDate
	ScalarTime
	ScalarDateTime
	ScalarDateTime2
	ScalarSmallDateTime
	ScalarDateTimeOffset
	ScalarChar
	ScalarVarChar
	ScalarText
	ScalarNChar
	ScalarNVarChar
	ScalarNText
	ScalarBinary
	ScalarVarBinary
	ScalarImage
	ScalarUniqueIdentifier
	ScalarXml
	ScalarSqlVariant
	ScalarRowVersion
	ScalarTimestamp
	ScalarHierarchyID
	ScalarGeometry
	ScalarGeography
	scalarCount
)

const scalarKw = kw | FlagScalarType

// Scalar type keywords (not reserved).
const (
	KwBit              = scalarKw | Kind(ScalarBit)
	KwTinyInt          = scalarKw | Kind(ScalarTinyInt)
	KwSmallInt         = scalarKw | Kind(ScalarSmallInt)
	KwInt              = scalarKw | Kind(ScalarInt)
	KwBigInt           = scalarKw | Kind(ScalarBigInt)
	KwDecimal          = scalarKw | Kind(ScalarDecimal)
	KwNumeric          = scalarKw | Kind(ScalarNumeric)
	KwMoney            = scalarKw | Kind(ScalarMoney)
	KwSmallMoney       = scalarKw | Kind(ScalarSmallMoney)
	KwFloat            = scalarKw | Kind(ScalarFloat)
	KwReal             = scalarKw | Kind(ScalarReal)
	KwDate             = scalarKw | Kind(ScalarDate)
	KwTime             = scalarKw | Kind(ScalarTime)
	KwDateTime         = scalarKw | Kind(ScalarDateTime)
	KwDateTime2        = scalarKw | Kind(ScalarDateTime2)
	KwSmallDateTime    = scalarKw | Kind(ScalarSmallDateTime)
	KwDateTimeOffset   = scalarKw | Kind(ScalarDateTimeOffset)
	KwChar             = scalarKw | Kind(ScalarChar)
	KwVarChar          = scalarKw | Kind(ScalarVarChar)
	KwText             = scalarKw | Kind(ScalarText)
	KwNChar            = scalarKw | Kind(ScalarNChar)
	KwNVarChar         = scalarKw | Kind(ScalarNVarChar)
	KwNText            = scalarKw | Kind(ScalarNText)
	KwBinary           = scalarKw | Kind(ScalarBinary)
	KwVarBinary        = scalarKw | Kind(ScalarVarBinary)
	KwImage            = scalarKw | Kind(ScalarImage)
	KwUniqueIdentifier = scalarKw | Kind(ScalarUniqueIdentifier)
	KwXml              = scalarKw | Kind(ScalarXml)
	KwSqlVariant       = scalarKw | Kind(ScalarSqlVariant)
	KwRowVersion       = scalarKw | Kind(ScalarRowVersion)
	KwTimestamp        = scalarKw | Kind(ScalarTimestamp)
	KwHierarchyID      = scalarKw | Kind(ScalarHierarchyID)
	KwGeometry         = scalarKw | Kind(ScalarGeometry)
	KwGeography        = scalarKw | Kind(ScalarGeography)
)

var scalarNames = [scalarCount]string{
	ScalarBit: "bit",
	ScalarTinyInt: "tinyint",
	ScalarSmallInt: "smallint",
	ScalarInt: "int",
	ScalarBigInt: "bigint",
	ScalarDecimal: "decimal",
	ScalarNumeric: "numeric",
	ScalarMoney: "money",
	ScalarSmallMoney: "smallmoney",
	ScalarFloat: "float",
	ScalarReal: "real",
	ScalarDate: "date",
	ScalarTime: "time",
	ScalarDateTime: "datetime",
	ScalarDateTime2: "datetime2",
	ScalarSmallDateTime: "smalldatetime",
	ScalarDateTimeOffset: "datetimeoffset",
	ScalarChar: "char",
	ScalarVarChar: "varchar",
	ScalarText: "text",
	ScalarNChar: "nchar",
	ScalarNVarChar: "nvarchar",
	ScalarNText: "ntext",
	ScalarBinary: "binary",
	ScalarVarBinary: "varbinary",
	ScalarImage: "image",
	ScalarUniqueIdentifier: "uniqueidentifier",
	ScalarXml: "xml",
	ScalarSqlVariant: "sql_variant",
	ScalarRowVersion: "rowversion",
	ScalarTimestamp: "timestamp",
	ScalarHierarchyID: "hierarchyid",
	ScalarGeometry: "geometry",
	ScalarGeography: "geography",
}

func (s ScalarType) String() string {
	if s == ScalarNone || s >= scalarCount {
		return "none"
	}
	return scalarNames[s]
}

// Kind returns the keyword kind for the scalar type, None for ScalarNone.
func (s ScalarType) Kind() Kind {
	if s == ScalarNone || s >= scalarCount {
		return None
	}
	return scalarKw | Kind(s)
}

// ScalarTypeOf maps a scalar type keyword kind back to its tag.
func ScalarTypeOf(k Kind) (ScalarType, bool) {
	if !k.IsScalarType() || !k.IsKeyword() {
		return ScalarNone, false
	}
	s := ScalarType(k.Value())
	if s == ScalarNone || s >= scalarCount {
		return ScalarNone, false
	}
	return s, true
}
