package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/marcus/basket/internal/models"
)

func sampleDoc() Document {
	ts := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	return Document{
		Identity:   "premium",
		Tier:       models.TierPremium,
		ExportedAt: ts,
		Lists: []models.ShoppingList{
			{
				ID:        "l1",
				Name:      "Groceries",
				CreatedAt: ts,
				Items: []models.Item{
					{ID: "i1", Name: "Milk", Quantity: 2, Checked: true, CreatedAt: ts},
					{ID: "i2", Name: "Eggs", CreatedAt: ts},
				},
			},
			{ID: "l2", Name: "Hardware", CreatedAt: ts},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleDoc()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Identity != "premium" || len(got.Lists) != 2 {
		t.Errorf("decoded = %+v", got)
	}
	if got.Lists[0].Items[0].Quantity != 2 || !got.Lists[0].Items[0].Checked {
		t.Errorf("first item = %+v", got.Lists[0].Items[0])
	}
}

func TestWriteJSONEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Document{Identity: "bob"}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"lists": []`) {
		t.Errorf("expected empty array, got %s", buf.String())
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleDoc())

	for _, want := range []string{
		"# Shopping lists for premium",
		"_Exported 2025-06-01 09:30_",
		"## Groceries",
		"- [x] Milk ×2",
		"- [ ] Eggs\n",
		"## Hardware\n\n_empty_",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownNoLists(t *testing.T) {
	md := Markdown(Document{})
	if !strings.Contains(md, "for guest") || !strings.Contains(md, "No lists yet.") {
		t.Errorf("markdown = %q", md)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "csv", sampleDoc()); err == nil {
		t.Fatal("expected error for csv")
	}
	if err := Write(&buf, "md", sampleDoc()); err != nil {
		t.Fatalf("md alias failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# Shopping lists") {
		t.Errorf("md output = %q", buf.String())
	}
}
