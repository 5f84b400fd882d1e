package multisig

import (
	"io"
	"testing"

	"github.com/keyper-labs/linera.dev"
	"github.com/keyper-labs/linera.dev/vaulttest/assert"
)

func TestProposalWireFormat(t *testing.T) {
	p := &Proposal{
		ID:                1,
		Kind:              &ProposalKind{Transfer: &Transfer{To: linera.Address{1, 2}, Value: 300}},
		Proposer:          linera.Address{0xaa},
		ConfirmationCount: 2,
		Executed:          true,
		CreatedAt:         5,
		ExpiresAt:         6,
	}
	want := []byte{
		0x08, 0x01,
		0x12, 0x09, 0x0a, 0x07, 0x0a, 0x02, 0x01, 0x02, 0x10, 0xac, 0x02,
		0x1a, 0x01, 0xaa,
		0x20, 0x02,
		0x28, 0x01,
		0x30, 0x05,
		0x38, 0x06,
	}

	raw, err := linera.Marshal(p)
	assert.Nil(t, err)
	assert.Equal(t, want, raw)
	assert.Equal(t, len(want), p.Size())

	var got Proposal
	assert.Nil(t, linera.Unmarshal(raw, &got))
	assert.Equal(t, p, &got)
}

func TestConfirmationRecordWireFormat(t *testing.T) {
	cases := map[string]struct {
		raw  []byte
		want []uint64
	}{
		"packed": {
			raw:  []byte{0x0a, 0x04, 0x01, 0x05, 0x80, 0x01},
			want: []uint64{1, 5, 128},
		},
		"unpacked": {
			raw:  []byte{0x08, 0x01, 0x08, 0x05, 0x08, 0x80, 0x01},
			want: []uint64{1, 5, 128},
		},
		"empty": {
			raw:  nil,
			want: nil,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var rec ConfirmationRecord
			assert.Nil(t, rec.Unmarshal(tc.raw))
			assert.Equal(t, tc.want, rec.ProposalIDs)
		})
	}

	raw, err := (&ConfirmationRecord{ProposalIDs: []uint64{1, 5, 128}}).Marshal()
	assert.Nil(t, err)
	assert.Equal(t, cases["packed"].raw, raw)
}

func TestUnmarshalUnknownField(t *testing.T) {
	// field 9 is not part of the message and is skipped
	var msg ConfirmMsg
	assert.Nil(t, msg.Unmarshal([]byte{0x08, 0x07, 0x48, 0x01, 0x52, 0x01, 0xff}))
	assert.Equal(t, uint64(7), msg.ProposalID)
}

func TestUnmarshalMalformed(t *testing.T) {
	cases := map[string][]byte{
		"truncated varint":  {0x08, 0x80},
		"truncated bytes":   {0x1a, 0x05, 0xaa},
		"truncated message": {0x12, 0x09, 0x0a, 0x07},
	}
	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			var p Proposal
			assert.Equal(t, io.ErrUnexpectedEOF, p.Unmarshal(raw))
		})
	}

	var p Proposal
	if err := p.Unmarshal([]byte{0x08, 0x01, 0x10, 0x01}); err == nil {
		t.Fatal("wrong wire type accepted")
	}
}
