package phonetic

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed data/seed.dict
var seedDictionary string

// Pronunciation is one ARPAbet phone sequence, e.g. [T ER1 T AH0 L Z].
type Pronunciation []string

// Stresses returns the stress digit of every vowel phone in order.
func (p Pronunciation) Stresses() string {
	var b strings.Builder
	for _, phone := range p {
		if phone == "" {
			continue
		}
		switch last := phone[len(phone)-1]; last {
		case '0', '1', '2':
			b.WriteByte(last)
		}
	}
	return b.String()
}

// String renders the phones space separated, as they appear in cmudict.
func (p Pronunciation) String() string {
	return strings.Join(p, " ")
}

// Dictionary maps lower-case words to their pronunciation variants. It is
// not safe for concurrent mutation; once loaded, concurrent reads are fine.
type Dictionary struct {
	entries map[string][]Pronunciation
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string][]Pronunciation)}
}

// Add appends a pronunciation variant for word.
func (d *Dictionary) Add(word string, phones []string) {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" || len(phones) == 0 {
		return
	}
	p := make(Pronunciation, len(phones))
	copy(p, phones)
	d.entries[key] = append(d.entries[key], p)
}

// PhonesForWord returns every known pronunciation of word, first variant
// first. Unknown words return nil.
func (d *Dictionary) PhonesForWord(word string) []Pronunciation {
	if d == nil {
		return nil
	}
	return d.entries[strings.ToLower(word)]
}

// Len reports the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Merge copies other's entries into d. Words present in both take other's
// variants, so a full dictionary can refine the seed.
func (d *Dictionary) Merge(other *Dictionary) {
	if other == nil {
		return
	}
	for word, variants := range other.entries {
		d.entries[word] = append([]Pronunciation(nil), variants...)
	}
}

// Load parses a pronouncing dictionary. Both the cmudict-0.7b layout
// ("WORD  W ER1 D", ";;;" comments, "WORD(1)" variants) and the cmudict.dict
// layout ("word w er1 d", "#" comments, "word(2)" variants) are accepted.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.Index(line, " #"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word followed by phones", lineNum)
		}
		phones := fields[1:]
		for i, phone := range phones {
			phones[i] = strings.ToUpper(phone)
		}
		d.Add(baseWord(fields[0]), phones)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

var (
	seedOnce sync.Once
	seed     *Dictionary
	seedErr  error
)

// Embedded returns a fresh copy of the compiled-in seed dictionary.
func Embedded() (*Dictionary, error) {
	seedOnce.Do(func() {
		seed, seedErr = Load(strings.NewReader(seedDictionary))
	})
	if seedErr != nil {
		return nil, fmt.Errorf("parse seed dictionary: %w", seedErr)
	}
	d := New()
	d.Merge(seed)
	return d, nil
}

// baseWord strips a "(n)" variant marker.
func baseWord(word string) string {
	if open := strings.LastIndexByte(word, '('); open > 0 && strings.HasSuffix(word, ")") {
		return word[:open]
	}
	return word
}
