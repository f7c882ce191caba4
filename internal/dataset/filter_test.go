package dataset_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/aichronos/internal/dataset"
)

func model(id, name string, company dataset.Company, date string, caps ...dataset.Capability) dataset.Model {
	released, err := time.Parse(dataset.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return dataset.Model{
		ID:           id,
		Name:         name,
		Company:      company,
		ReleaseDate:  date,
		Released:     released,
		Capabilities: caps,
	}
}

func sample() []dataset.Model {
	return []dataset.Model{
		model("gpt3", "GPT-3", dataset.OpenAI, "2020-05-28", dataset.NLP),
		model("llama", "LLaMA", dataset.Meta, "2023-02-24", dataset.NLP),
		model("gpt4", "GPT-4", dataset.OpenAI, "2023-03-14", dataset.NLP, dataset.Multimodal),
		model("claude", "Claude", dataset.Anthropic, "2023-03-14", dataset.NLP),
		model("sora", "Sora", dataset.OpenAI, "2024-02-15", dataset.Video),
	}
}

func ids(models []dataset.Model) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.ID
	}
	return out
}

func TestApply_Sort(t *testing.T) {
	assert.Equal(t, []string{"sora", "claude", "gpt4", "llama", "gpt3"},
		ids(dataset.Apply(sample(), dataset.Filter{}, dataset.Newest)))
	assert.Equal(t, []string{"gpt3", "llama", "claude", "gpt4", "sora"},
		ids(dataset.Apply(sample(), dataset.Filter{}, dataset.Oldest)))
}

func TestApply_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter dataset.Filter
		want   []string
	}{
		{name: "search name", filter: dataset.Filter{Search: "gpt"}, want: []string{"gpt4", "gpt3"}},
		{name: "search company", filter: dataset.Filter{Search: "  META "}, want: []string{"llama"}},
		{name: "company", filter: dataset.Filter{Company: dataset.OpenAI}, want: []string{"sora", "gpt4", "gpt3"}},
		{name: "year", filter: dataset.Filter{Year: "2023"}, want: []string{"claude", "gpt4", "llama"}},
		{name: "capability", filter: dataset.Filter{Capability: dataset.Multimodal}, want: []string{"gpt4"}},
		{name: "combined", filter: dataset.Filter{Company: dataset.OpenAI, Year: "2023"}, want: []string{"gpt4"}},
		{name: "none", filter: dataset.Filter{Search: "zzz"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(dataset.Apply(sample(), tt.filter, dataset.Newest)))
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = dataset.Apply(in, dataset.Filter{}, dataset.Newest)
	assert.Equal(t, "gpt3", in[0].ID)
}

func TestFilter_Active(t *testing.T) {
	assert.False(t, dataset.Filter{}.Active())
	assert.True(t, dataset.Filter{Year: "2024"}.Active())
	assert.False(t, dataset.Filter{Search: "   "}.Active())
	assert.True(t, dataset.Filter{Search: " gpt "}.Active())
}

func TestOptionLists(t *testing.T) {
	assert.Equal(t, []string{"2024", "2023", "2020"}, dataset.Years(sample()))
	assert.Equal(t, []dataset.Capability{dataset.Multimodal, dataset.NLP, dataset.Video}, dataset.Capabilities(sample()))
}

func TestCycle(t *testing.T) {
	opts := []string{"2024", "2023"}
	assert.Equal(t, "2024", dataset.Cycle(opts, ""))
	assert.Equal(t, "2023", dataset.Cycle(opts, "2024"))
	assert.Equal(t, "", dataset.Cycle(opts, "2023"))
	assert.Equal(t, "", dataset.Cycle(opts, "1999"))
	assert.Equal(t, "", dataset.Cycle([]string(nil), ""))
}

func TestSortOrder_Toggle(t *testing.T) {
	assert.Equal(t, dataset.Oldest, dataset.Newest.Toggle())
	assert.Equal(t, dataset.Newest, dataset.Oldest.Toggle())
}
