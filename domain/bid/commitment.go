package bid

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/leadauction/domain"
)

// Sealed is the plaintext behind a commitment
type Sealed struct {
	Amount decimal.Decimal `json:"amount"`
	Salt   string          `json:"salt"`
}

// EncodeCommitment is the inverse of DecodeCommitment
func EncodeCommitment(s Sealed) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(data), nil
}

// DecodeCommitment reads a 0x-hex encoded JSON payload {"amount","salt"}
func DecodeCommitment(commitment string) (*Sealed, error) {
	data, err := hexutil.Decode(commitment)
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrInvalidCommitment, err)
	}
	s := &Sealed{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrInvalidCommitment, err)
	}
	if !s.Amount.IsPositive() {
		return nil, xerrors.Errorf("%w: amount must be positive", domain.ErrInvalidCommitment)
	}
	return s, nil
}

// CommitmentHash is keccak256(leadId|buyerId|amount|salt) in 0x-hex
func CommitmentHash(leadId, buyerId string, amount decimal.Decimal, salt string) string {
	payload := strings.Join([]string{leadId, buyerId, amount.String(), salt}, "|")
	return crypto.Keccak256Hash([]byte(payload)).Hex()
}

// Open decodes the bid's commitment and checks it against the stored hash when one is present.
func Open(b *Bid) (decimal.Decimal, error) {
	if b.Commitment == nil || *b.Commitment == "" {
		return decimal.Zero, xerrors.Errorf("%w: missing", domain.ErrInvalidCommitment)
	}
	s, err := DecodeCommitment(*b.Commitment)
	if err != nil {
		return decimal.Zero, err
	}
	if b.CommitmentHash != nil && *b.CommitmentHash != "" {
		if !strings.EqualFold(CommitmentHash(b.LeadId, b.BuyerId, s.Amount, s.Salt), *b.CommitmentHash) {
			return decimal.Zero, xerrors.Errorf("%w: hash mismatch", domain.ErrInvalidCommitment)
		}
	}
	return s.Amount, nil
}
