// Package nmea frames and validates NMEA 0183 AIVDM/AIVDO sentences,
// including their optional tag block prefix and companion Gatehouse
// wrapper sentences.
package nmea

import (
	"strconv"
	"strings"

	"aisdeck/aiserr"
	"aisdeck/bitfield"
)

const maxSentenceLength = 82

// Options controls framer behavior.
type Options struct {
	// ErrorIfChecksumInvalid makes a checksum mismatch a hard error
	// instead of a sentence with IsValid=false. Default (zero value)
	// is lenient.
	ErrorIfChecksumInvalid bool
}

// Sentence is a parsed, validated AIVDM/AIVDO NMEA framing record.
type Sentence struct {
	Raw        []byte
	Delimiter  byte
	Talker     string
	Type       string
	FragCount  int
	FragIndex  int
	SeqID      string
	Channel    string
	Payload    string
	FillBits   int
	Checksum   uint8
	IsValid    bool
	TagBlock   *TagBlock
	Gatehouse  *Gatehouse
}

// IsSingle reports whether this sentence is a complete, unfragmented message.
func (s *Sentence) IsSingle() bool {
	return s.SeqID == "" && s.FragIndex == 1 && s.FragCount == 1
}

// XORChecksum computes the 8-bit XOR checksum over data, as used for both
// sentence bodies and tag block content.
func XORChecksum(data []byte) uint8 {
	var cs uint8
	for _, b := range data {
		cs ^= b
	}
	return cs
}

// Parse frames and validates a single NMEA line. The line may optionally
// be prefixed with a tag block and may carry CRLF/LF line termination or
// none at all.
func Parse(line []byte, opts Options) (*Sentence, error) {
	raw := line
	line = stripLineEnding(line)

	s := &Sentence{Raw: raw}

	if len(line) > 0 && line[0] == '\\' {
		end := indexByteFrom(line, '\\', 1)
		if end < 0 {
			return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "unterminated tag block")
		}
		tb, err := parseTagBlock(line[1:end])
		if err != nil {
			return nil, err
		}
		s.TagBlock = tb
		line = line[end+1:]
	}

	if len(line) > maxSentenceLength {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage,
			"sentence length %d exceeds maximum %d", len(line), maxSentenceLength)
	}

	if len(line) == 0 || (line[0] != '!' && line[0] != '$') {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "missing '!' or '$' delimiter")
	}
	s.Delimiter = line[0]

	star := strings.LastIndexByte(string(line), '*')
	if star < 0 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "missing checksum delimiter '*'")
	}
	body := line[1:star]
	checksumHex := line[star+1:]
	if len(checksumHex) < 2 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "truncated checksum")
	}
	checksum, err := strconv.ParseUint(string(checksumHex[:2]), 16, 8)
	if err != nil {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "malformed checksum %q", checksumHex[:2])
	}
	s.Checksum = uint8(checksum)

	computed := XORChecksum(body)
	s.IsValid = computed == s.Checksum
	if !s.IsValid && opts.ErrorIfChecksumInvalid {
		return nil, aiserr.New(aiserr.KindInvalidChecksum,
			"expected %02X, computed %02X", s.Checksum, computed)
	}

	fields := strings.Split(string(body), ",")
	if len(fields) != 7 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage,
			"expected 7 comma-separated fields, got %d", len(fields))
	}

	head := fields[0]
	if len(head) < 5 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "malformed sentence head %q", head)
	}
	s.Talker = head[:2]
	s.Type = head[2:]

	s.FragCount, err = parseIntField(fields[1], 1)
	if err != nil {
		return nil, err
	}
	s.FragIndex, err = parseIntField(fields[2], 1)
	if err != nil {
		return nil, err
	}
	if s.FragCount < 1 || s.FragCount > 9 {
		return nil, aiserr.New(aiserr.KindTooManyMessages, "fragment count %d outside 1..9", s.FragCount)
	}
	if s.FragIndex < 1 || s.FragIndex > s.FragCount {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "fragment index %d exceeds count %d", s.FragIndex, s.FragCount)
	}

	s.SeqID = fields[3]
	s.Channel = fields[4]
	s.Payload = fields[5]

	for i := 0; i < len(s.Payload); i++ {
		if !bitfield.IsValidPayloadChar(s.Payload[i]) {
			return nil, aiserr.New(aiserr.KindNonPrintableCharacter,
				"payload byte %q at offset %d", s.Payload[i], i)
		}
	}

	s.FillBits, err = parseIntField(fields[6], 0)
	if err != nil {
		return nil, err
	}
	if s.FillBits < 0 || s.FillBits > 5 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "fill bits %d outside 0..5", s.FillBits)
	}

	return s, nil
}

func parseIntField(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, aiserr.New(aiserr.KindInvalidNMEAMessage, "malformed numeric field %q", s)
	}
	return n, nil
}

func stripLineEnding(line []byte) []byte {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

func indexByteFrom(b []byte, c byte, from int) int {
	for i := from; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}
