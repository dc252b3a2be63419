package mongoclient

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

func TestDecimalCodec(t *testing.T) {
	type doc struct {
		Amount  decimal.Decimal  `bson:"amount"`
		Fee     *decimal.Decimal `bson:"fee"`
		Missing *decimal.Decimal `bson:"missing"`
	}

	reg := NewRegistry()
	fee := decimal.RequireFromString("1.38")
	in := doc{Amount: decimal.RequireFromString("55.00"), Fee: &fee}

	raw, err := bson.MarshalWithRegistry(reg, in)
	require.NoError(t, err)
	require.Equal(t, bsontype.Decimal128, bson.Raw(raw).Lookup("amount").Type)
	require.Equal(t, bsontype.Null, bson.Raw(raw).Lookup("missing").Type)

	var out doc
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	require.True(t, in.Amount.Equal(out.Amount))
	require.NotNil(t, out.Fee)
	require.True(t, fee.Equal(*out.Fee))
	require.Nil(t, out.Missing)
}

func TestDecimalCodecDecodesNumbers(t *testing.T) {
	type doc struct {
		Amount decimal.Decimal `bson:"amount"`
	}
	reg := NewRegistry()

	cases := []struct {
		in  interface{}
		exp string
	}{
		{int32(50), "50"},
		{int64(75), "75"},
		{12.5, "12.5"},
		{"99.99", "99.99"},
	}
	for _, c := range cases {
		raw, err := bson.Marshal(bson.M{"amount": c.in})
		require.NoError(t, err)
		var out doc
		require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
		require.True(t, decimal.RequireFromString(c.exp).Equal(out.Amount), "%v", c.in)
	}
}
