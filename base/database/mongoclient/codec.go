package mongoclient

import (
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var tDecimal = reflect.TypeOf(decimal.Decimal{})

// NewRegistry returns the default bson registry with decimal.Decimal stored as Decimal128.
func NewRegistry() *bsoncodec.Registry {
	rb := bson.NewRegistryBuilder()
	rb.RegisterTypeEncoder(tDecimal, bsoncodec.ValueEncoderFunc(decimalEncodeValue))
	rb.RegisterTypeDecoder(tDecimal, bsoncodec.ValueDecoderFunc(decimalDecodeValue))
	return rb.Build()
}

func decimalEncodeValue(ec bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tDecimal {
		return bsoncodec.ValueEncoderError{Name: "decimalEncodeValue", Types: []reflect.Type{tDecimal}, Received: val}
	}
	d := val.Interface().(decimal.Decimal)
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return err
	}
	return vw.WriteDecimal128(d128)
}

func decimalDecodeValue(dc bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tDecimal {
		return bsoncodec.ValueDecoderError{Name: "decimalDecodeValue", Types: []reflect.Type{tDecimal}, Received: val}
	}

	var (
		str string
		err error
	)
	switch vr.Type() {
	case bsontype.Decimal128:
		var d128 primitive.Decimal128
		d128, err = vr.ReadDecimal128()
		str = d128.String()
	case bsontype.String:
		str, err = vr.ReadString()
	case bsontype.Double:
		var f float64
		f, err = vr.ReadDouble()
		str = strconv.FormatFloat(f, 'f', -1, 64)
	case bsontype.Int32:
		var i int32
		i, err = vr.ReadInt32()
		str = strconv.FormatInt(int64(i), 10)
	case bsontype.Int64:
		var i int64
		i, err = vr.ReadInt64()
		str = strconv.FormatInt(i, 10)
	case bsontype.Null:
		val.Set(reflect.Zero(tDecimal))
		return vr.ReadNull()
	default:
		return bsoncodec.ValueDecoderError{Name: "decimalDecodeValue", Types: []reflect.Type{tDecimal}, Received: val}
	}
	if err != nil {
		return err
	}

	d, err := decimal.NewFromString(str)
	if err != nil {
		return err
	}
	val.Set(reflect.ValueOf(d))
	return nil
}
