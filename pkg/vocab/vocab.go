// Package vocab holds the static knowledge the classifier runs on: the
// intent catalog with exemplar phrases and weighted keywords, the word
// clusters that define the concept space, the word importance table, the
// domain vocabulary used for typo matching, and the slang, abbreviation,
// contraction and idiom tables used by the normalizer.
//
// A Store is loaded once at startup and treated as read-only configuration.
// A narrow mutation API (AddWord, AddSlang, AddIdiom, AddWordToCluster,
// SetWordImportance, AddExemplar) exists for runtime additions and is
// guarded by an internal lock.
package vocab

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// UnknownIntent is the reserved intent returned when no classification
// succeeds. It is always present in a Store and has no exemplars.
const UnknownIntent = "unknown"

// Intent describes one recognizable request category.
type Intent struct {
	// ID is the stable identifier used in classification results.
	ID string `json:"id" yaml:"id"`

	// Name is the friendly display name.
	Name string `json:"name" yaml:"name"`

	// Exemplars are hand-authored example phrases for this intent.
	Exemplars []string `json:"exemplars" yaml:"exemplars"`

	// Keywords maps salient words to their pattern-scoring weight.
	Keywords map[string]float64 `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Idiom is a multi-word phrase rewritten to a canonical form by the
// normalizer before per-token rewriting runs.
type Idiom struct {
	Phrase    string `json:"phrase" yaml:"phrase"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// Catalog is the plain-data form of a Store, used for construction and for
// loading from configuration files.
type Catalog struct {
	Intents       []Intent            `yaml:"intents"`
	Clusters      map[string][]string `yaml:"clusters"`
	Importance    map[string]float64  `yaml:"importance"`
	Vocabulary    []string            `yaml:"vocabulary"`
	Slang         map[string]string   `yaml:"slang"`
	Abbreviations map[string]string   `yaml:"abbreviations"`
	Contractions  map[string]string   `yaml:"contractions"`
	Idioms        []Idiom             `yaml:"idioms"`
}

// Store is the runtime view of a Catalog. All lookups take a read lock so
// the mutation API can be used while classification calls are in flight.
type Store struct {
	mu sync.RWMutex

	intents []*Intent
	byID    map[string]*Intent

	clusters     map[string][]string
	wordClusters map[string][]string

	importance map[string]float64

	words   []string
	wordSet map[string]bool

	slang         map[string]string
	abbreviations map[string]string
	contractions  map[string]string
	idioms        []Idiom

	// rev increments on every mutation, so the semantic engine knows when
	// its centroids and exemplar vectors are stale.
	rev uint64
}

// New builds a Store from a Catalog. The reserved unknown intent is added
// if the catalog does not define it.
func New(cat Catalog) (*Store, error) {
	s := &Store{
		byID:          make(map[string]*Intent),
		clusters:      make(map[string][]string),
		wordClusters:  make(map[string][]string),
		importance:    make(map[string]float64),
		wordSet:       make(map[string]bool),
		slang:         make(map[string]string),
		abbreviations: make(map[string]string),
		contractions:  make(map[string]string),
	}

	for i := range cat.Intents {
		in := cat.Intents[i]
		if in.ID == "" {
			return nil, fmt.Errorf("vocab: intent %d has empty id", i)
		}
		if _, dup := s.byID[in.ID]; dup {
			return nil, fmt.Errorf("vocab: duplicate intent %q", in.ID)
		}
		cp := Intent{
			ID:        in.ID,
			Name:      in.Name,
			Exemplars: append([]string(nil), in.Exemplars...),
			Keywords:  make(map[string]float64, len(in.Keywords)),
		}
		for w, weight := range in.Keywords {
			cp.Keywords[strings.ToLower(w)] = weight
		}
		s.intents = append(s.intents, &cp)
		s.byID[cp.ID] = &cp
	}
	if _, ok := s.byID[UnknownIntent]; !ok {
		unk := &Intent{ID: UnknownIntent, Name: "Unknown"}
		s.intents = append(s.intents, unk)
		s.byID[UnknownIntent] = unk
	}

	// Clusters load in sorted name order so the derived vocabulary has a
	// stable iteration order; the typo corrector's tie-breaking depends
	// on it.
	clusterNames := make([]string, 0, len(cat.Clusters))
	for name := range cat.Clusters {
		clusterNames = append(clusterNames, name)
	}
	sort.Strings(clusterNames)
	for _, name := range clusterNames {
		for _, w := range cat.Clusters[name] {
			s.addWordToClusterLocked(name, strings.ToLower(w))
		}
	}
	for w, weight := range cat.Importance {
		if weight <= 0 {
			return nil, fmt.Errorf("vocab: importance for %q must be positive, got %v", w, weight)
		}
		s.importance[strings.ToLower(w)] = weight
	}
	for _, w := range cat.Vocabulary {
		s.addWordLocked(strings.ToLower(w))
	}
	// Cluster members are part of the typo-matching vocabulary too.
	for _, name := range clusterNames {
		for _, w := range s.clusters[name] {
			s.addWordLocked(w)
		}
	}

	for from, to := range cat.Slang {
		s.slang[strings.ToLower(from)] = strings.ToLower(to)
	}
	for from, to := range cat.Abbreviations {
		s.abbreviations[strings.ToLower(from)] = strings.ToLower(to)
	}
	for from, to := range cat.Contractions {
		s.contractions[strings.ToLower(from)] = strings.ToLower(to)
	}

	s.idioms = append(s.idioms, cat.Idioms...)
	for i := range s.idioms {
		s.idioms[i].Phrase = strings.ToLower(s.idioms[i].Phrase)
		s.idioms[i].Canonical = strings.ToLower(s.idioms[i].Canonical)
	}
	sortIdioms(s.idioms)

	return s, nil
}

// sortIdioms orders idioms longest phrase first so longer idioms are not
// shadowed by shorter ones sharing a prefix.
func sortIdioms(idioms []Idiom) {
	sort.SliceStable(idioms, func(i, j int) bool {
		return len(idioms[i].Phrase) > len(idioms[j].Phrase)
	})
}

func (s *Store) addWordLocked(w string) {
	if w == "" || s.wordSet[w] {
		return
	}
	s.wordSet[w] = true
	s.words = append(s.words, w)
}

func (s *Store) addWordToClusterLocked(cluster, word string) {
	for _, existing := range s.clusters[cluster] {
		if existing == word {
			return
		}
	}
	s.clusters[cluster] = append(s.clusters[cluster], word)
	s.wordClusters[word] = append(s.wordClusters[word], cluster)
}

// Intents returns the catalog's intents in declaration order.
func (s *Store) Intents() []*Intent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Intent, len(s.intents))
	copy(out, s.intents)
	return out
}

// Intent looks up an intent by ID.
func (s *Store) Intent(id string) (*Intent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in, ok := s.byID[id]
	return in, ok
}

// FriendlyName returns the display name for an intent ID, falling back to
// the ID itself for unknown IDs.
func (s *Store) FriendlyName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if in, ok := s.byID[id]; ok && in.Name != "" {
		return in.Name
	}
	return id
}

// ClusterNames returns the cluster names in sorted order. The cluster set
// fixes the dimensionality of the semantic vector space.
func (s *Store) ClusterNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.clusters))
	for name := range s.clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClustersForWord returns the clusters a word belongs to, or nil.
func (s *Store) ClustersForWord(word string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordClusters[strings.ToLower(word)]
}

// Importance returns a word's importance weight, defaulting to 1.0.
func (s *Store) Importance(word string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if w, ok := s.importance[strings.ToLower(word)]; ok {
		return w
	}
	return 1.0
}

// Words returns the domain vocabulary in stable iteration order. The order
// matters: the typo corrector breaks distance ties by first match.
func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// IsWord reports whether w is an exact vocabulary member.
func (s *Store) IsWord(w string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordSet[strings.ToLower(w)]
}

// SlangFor returns the canonical form of a slang token.
func (s *Store) SlangFor(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	to, ok := s.slang[token]
	return to, ok
}

// AbbreviationFor returns the expansion of an abbreviation token.
func (s *Store) AbbreviationFor(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	to, ok := s.abbreviations[token]
	return to, ok
}

// ContractionFor returns the expansion of a contraction token.
func (s *Store) ContractionFor(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	to, ok := s.contractions[token]
	return to, ok
}

// Idioms returns the idiom table, longest phrase first.
func (s *Store) Idioms() []Idiom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Idiom, len(s.idioms))
	copy(out, s.idioms)
	return out
}

// Revision returns a counter that increments on every mutation. Any change
// can shift phrase vectors (new words alter typo correction, cluster and
// importance changes alter weights), so consumers caching derived state
// (intent centroids, exemplar vectors) compare it to decide whether a
// rebuild is needed.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

// AddWord adds a word to the domain vocabulary.
func (s *Store) AddWord(w string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addWordLocked(strings.ToLower(strings.TrimSpace(w)))
	s.rev++
}

// AddSlang registers a slang term and its canonical form.
func (s *Store) AddSlang(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slang[strings.ToLower(from)] = strings.ToLower(to)
	s.rev++
}

// AddIdiom registers a multi-word idiom and its canonical form.
func (s *Store) AddIdiom(phrase, canonical string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idioms = append(s.idioms, Idiom{
		Phrase:    strings.ToLower(phrase),
		Canonical: strings.ToLower(canonical),
	})
	sortIdioms(s.idioms)
	s.rev++
}

// AddWordToCluster adds a word to a cluster, creating the cluster if it
// does not exist yet. Adding a cluster after engine construction changes
// the vector space dimensionality, so callers doing that must rebuild the
// semantic engine; adding a word to an existing cluster is safe.
func (s *Store) AddWordToCluster(cluster, word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	word = strings.ToLower(word)
	s.addWordToClusterLocked(cluster, word)
	s.addWordLocked(word)
	s.rev++
}

// SetWordImportance sets a word's importance weight.
func (s *Store) SetWordImportance(word string, weight float64) error {
	if weight <= 0 {
		return fmt.Errorf("vocab: importance must be positive, got %v", weight)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.importance[strings.ToLower(word)] = weight
	s.rev++
	return nil
}

// AddExemplar appends an exemplar phrase to an intent.
func (s *Store) AddExemplar(intentID, phrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.byID[intentID]
	if !ok {
		return fmt.Errorf("vocab: intent %q not found", intentID)
	}
	if intentID == UnknownIntent {
		return fmt.Errorf("vocab: the %s intent cannot have exemplars", UnknownIntent)
	}
	in.Exemplars = append(in.Exemplars, phrase)
	s.rev++
	return nil
}
