package usecase

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

// Keys of the registry contract:
//
//	registry:admin               - admin address
//	registry:campaign_count      - last assigned id, big endian uint32
//	registry:campaign: ++ id     - campaign JSON, id as big endian uint32
//
// Keys of the escrow contract:
//
//	escrow:recipient, escrow:asset - addresses
//	escrow:deadline                - big endian uint64 unix seconds
//	escrow:target, escrow:raised   - 16 byte amounts
var (
	keyAdmin         = []byte("registry:admin")
	keyCampaignCount = []byte("registry:campaign_count")

	keyRecipient = []byte("escrow:recipient")
	keyAsset     = []byte("escrow:asset")
	keyDeadline  = []byte("escrow:deadline")
	keyTarget    = []byte("escrow:target")
	keyRaised    = []byte("escrow:raised")
)

func campaignKey(id uint32) []byte {
	key := []byte("registry:campaign:")
	return binary.BigEndian.AppendUint32(key, id)
}

// getValue returns nil, nil when key is absent.
func getValue(tx port.Txn, key []byte) ([]byte, error) {
	value, err := tx.Get(key)
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return value, nil
}

func getUint32(tx port.Txn, key []byte) (uint32, error) {
	raw, err := getValue(tx, key)
	if err != nil || raw == nil {
		return 0, err
	}
	if len(raw) != 4 {
		return 0, fmt.Errorf("read %q: truncated record", key)
	}
	return binary.BigEndian.Uint32(raw), nil
}

func putUint32(tx port.Txn, key []byte, v uint32) error {
	return tx.Set(key, binary.BigEndian.AppendUint32(nil, v))
}

func getUint64(tx port.Txn, key []byte) (uint64, bool, error) {
	raw, err := getValue(tx, key)
	if err != nil || raw == nil {
		return 0, false, err
	}
	if len(raw) != 8 {
		return 0, false, fmt.Errorf("read %q: truncated record", key)
	}
	return binary.BigEndian.Uint64(raw), true, nil
}

func putUint64(tx port.Txn, key []byte, v uint64) error {
	return tx.Set(key, binary.BigEndian.AppendUint64(nil, v))
}

func getAmount(tx port.Txn, key []byte) (domain.Amount, error) {
	raw, err := getValue(tx, key)
	if err != nil || raw == nil {
		return domain.Amount{}, err
	}
	return domain.AmountFromBytes(raw)
}

func putAmount(tx port.Txn, key []byte, v domain.Amount) error {
	return tx.Set(key, v.Bytes())
}

func getAddress(tx port.Txn, key []byte) (domain.Address, bool, error) {
	raw, err := getValue(tx, key)
	if err != nil || raw == nil {
		return "", false, err
	}
	return domain.Address(raw), true, nil
}

func putAddress(tx port.Txn, key []byte, v domain.Address) error {
	return tx.Set(key, []byte(v))
}

func getCampaign(tx port.Txn, id uint32) (*domain.Campaign, error) {
	raw, err := getValue(tx, campaignKey(id))
	if err != nil || raw == nil {
		return nil, err
	}
	var c domain.Campaign
	if err = json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode campaign %d: %w", id, err)
	}
	return &c, nil
}

func putCampaign(tx port.Txn, c *domain.Campaign) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return tx.Set(campaignKey(c.ID), raw)
}
