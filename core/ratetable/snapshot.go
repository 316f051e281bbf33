package ratetable

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// SnapshotEntry is the content hash of one table
type SnapshotEntry struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
}

// Snapshot identifies the exact tables a repository was built from.
// Two repositories with equal ContentHash price identically.
type Snapshot struct {
	ContentHash string          `json:"content_hash"`
	Entries     []SnapshotEntry `json:"entries"`
}

// ShortHash is the first 12 hex digits of the content hash
func (s Snapshot) ShortHash() string {
	if len(s.ContentHash) < 12 {
		return s.ContentHash
	}
	return s.ContentHash[:12]
}

func buildSnapshot(r *Repository) (Snapshot, error) {
	var entries []SnapshotEntry

	keys := make([]Key, 0, len(r.schedules))
	for k := range r.schedules {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	for _, k := range keys {
		h, err := hashOf(r.schedules[k])
		if err != nil {
			return Snapshot{}, err
		}
		entries = append(entries, SnapshotEntry{Name: "fulfillment/" + k.String(), Hash: h})
	}

	// encoding/json sorts map keys, so these are deterministic
	others := []struct {
		name string
		v    interface{}
	}{
		{"referral", r.referral},
		{"storage", r.storage},
		{"storage/dangerous", r.dangerousStorage},
		{"utilization", r.utilization},
		{"aged/pre", r.agedPre},
		{"aged/post", r.agedPost},
		{"aged/cutover", r.agedCutover.Format("2006-01-02")},
	}
	for _, o := range others {
		h, err := hashOf(o.v)
		if err != nil {
			return Snapshot{}, err
		}
		entries = append(entries, SnapshotEntry{Name: o.name, Hash: h})
	}

	total := sha256.New()
	for _, e := range entries {
		total.Write([]byte(e.Name))
		total.Write([]byte{0})
		total.Write([]byte(e.Hash))
		total.Write([]byte{0})
	}

	return Snapshot{
		ContentHash: hex.EncodeToString(total.Sum(nil)),
		Entries:     entries,
	}, nil
}

func hashOf(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize rate table: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
