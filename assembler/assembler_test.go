package assembler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisdeck/nmea"
)

func mustParse(t *testing.T, line string) *nmea.Sentence {
	t.Helper()
	s, err := nmea.Parse([]byte(line), nmea.Options{})
	require.NoError(t, err)
	return s
}

// mustParseGrouped wraps payload in a tag block carrying g:n/N/id, so the
// returned Sentence's TagBlock.Group is populated for AddTagGroup.
func mustParseGrouped(t *testing.T, n, total int, id, payload string) *nmea.Sentence {
	t.Helper()
	content := []byte(fmt.Sprintf("g:%d/%d/%s", n, total, id))
	cs := nmea.XORChecksum(content)
	line := fmt.Sprintf("\\%s*%02X\\%s", content, cs, payload)
	return mustParse(t, line)
}

func TestAssembleSingleSentence(t *testing.T) {
	a := New()
	s := mustParse(t, "!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05")
	asm, ok, err := a.Add(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s.Payload, asm.Payload)
}

func TestAssembleMultiFragmentOrder(t *testing.T) {
	a := New()
	s1 := mustParse(t, "!AIVDM,2,1,4,A,55O0W7`00001L@gCWGA2uItLth@DqtL5@F22220j1h742t0Ht0000000,0*08")
	s2 := mustParse(t, "!AIVDM,2,2,4,A,000000000000000,2*20")

	_, ok, err := a.Add(s1)
	require.NoError(t, err)
	require.False(t, ok)

	asm, ok, err := a.Add(s2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s1.Payload+s2.Payload, asm.Payload)
	assert.Equal(t, 2, asm.FillBits)
}

func TestAssembleMultiFragmentOutOfOrder(t *testing.T) {
	inOrder := New()
	s1 := mustParse(t, "!AIVDM,2,1,4,A,55O0W7`00001L@gCWGA2uItLth@DqtL5@F22220j1h742t0Ht0000000,0*08")
	s2 := mustParse(t, "!AIVDM,2,2,4,A,000000000000000,2*20")
	inOrder.Add(s1)
	wantAsm, _, _ := inOrder.Add(s2)

	reversed := New()
	reversed.Add(s2)
	gotAsm, ok, err := reversed.Add(s1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, wantAsm.Payload, gotAsm.Payload)
}

func TestConflictingFragmentIsError(t *testing.T) {
	a := New()
	s1 := mustParse(t, "!AIVDM,2,1,4,A,55O0W7`00001L@gCWGA2uItLth@DqtL5@F22220j1h742t0Ht0000000,0*08")
	dup := mustParse(t, "!AIVDM,2,1,4,A,000000000000000,0*0E")
	a.Add(s1)
	_, _, err := a.Add(dup)
	require.Error(t, err)
}

func TestNotifyGatehouseAttachesToNextAssembly(t *testing.T) {
	a := New()
	gh := &nmea.Gatehouse{Region: "EU", Country: "NL"}
	a.NotifyGatehouse(gh)

	s := mustParse(t, "!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05")
	asm, ok, err := a.Add(s)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, asm.Gatehouse)
	assert.Same(t, gh, asm.Gatehouse)

	// A second assembly with no intervening Gatehouse sees no wrapper.
	s2 := mustParse(t, "!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05")
	asm2, ok, err := a.Add(s2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, asm2.Gatehouse)
}

func TestNotifyGatehouseAttachesAcrossFragments(t *testing.T) {
	a := New()
	gh := &nmea.Gatehouse{Region: "US"}
	a.NotifyGatehouse(gh)

	s1 := mustParse(t, "!AIVDM,2,1,4,A,55O0W7`00001L@gCWGA2uItLth@DqtL5@F22220j1h742t0Ht0000000,0*08")
	_, ok, err := a.Add(s1)
	require.NoError(t, err)
	require.False(t, ok)

	s2 := mustParse(t, "!AIVDM,2,2,4,A,000000000000000,2*20")
	asm, ok, err := a.Add(s2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, gh, asm.Gatehouse)
}

func TestAddTagGroupReleasesOnceAllMembersArrive(t *testing.T) {
	a := New()
	s1 := mustParseGrouped(t, 1, 2, "77", "!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05")
	s2 := mustParseGrouped(t, 2, 2, "77", "!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05")

	_, ok := a.AddTagGroup(s1)
	assert.False(t, ok, "group should not release until all members arrive")

	members, ok := a.AddTagGroup(s2)
	require.True(t, ok)
	require.Len(t, members, 2)
	assert.Same(t, s1, members[0])
	assert.Same(t, s2, members[1])

	_, exists := a.tagGroups["77"]
	assert.False(t, exists, "released group should be removed from the queue")
}

func TestAddTagGroupIgnoresUngroupedSentence(t *testing.T) {
	a := New()
	s := mustParse(t, "!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*05")
	_, ok := a.AddTagGroup(s)
	assert.False(t, ok)
}

func TestEvictionDropsOldestGroup(t *testing.T) {
	a := NewWithWindow(1)
	first := mustParse(t, "!AIVDM,2,1,1,A,55O0W7`00001L@gCWGA2uItLth@DqtL5@F22220j1h742t0Ht0000000,0*09")
	second := mustParse(t, "!AIVDM,2,1,2,A,55O0W7`00001L@gCWGA2uItLth@DqtL5@F22220j1h742t0Ht0000000,0*0A")
	a.Add(first)
	a.Add(second)
	assert.Equal(t, 1, len(a.groups))
	_, exists := a.groups[groupKey{seqID: "1", channel: "A"}]
	assert.False(t, exists, "oldest group should have been evicted")
}
