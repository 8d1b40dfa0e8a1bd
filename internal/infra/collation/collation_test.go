package collation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    string
		wantErr bool
	}{
		{name: "default", tag: "", want: "ko"},
		{name: "english", tag: "en", want: "en"},
		{name: "invalid", tag: "not a tag!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Language())
		})
	}
}

func TestCollator_Compare(t *testing.T) {
	c, err := New("ko")
	require.NoError(t, err)

	names := []string{"하림", "가을방학", "나얼", "다섯손가락"}
	sort.Slice(names, func(i, j int) bool { return c.Compare(names[i], names[j]) < 0 })

	assert.Equal(t, []string{"가을방학", "나얼", "다섯손가락", "하림"}, names)
	assert.Equal(t, 0, c.Compare("넬", "넬"))
	assert.Equal(t, -1, c.Compare("abba", "Blur"), "case is a secondary difference")
}
