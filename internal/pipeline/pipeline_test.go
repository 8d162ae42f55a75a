package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/langdetect"
	"github.com/ebolowa/contract-insight/internal/llm"
	"github.com/ebolowa/contract-insight/internal/ner"
	"github.com/ebolowa/contract-insight/internal/summarize"
)

// contractText has enough English stopwords for a certain detection and a
// labeled amount for the deterministic pattern pass.
const contractText = `This agreement is made between the employer and the employee.
The employee shall perform the duties described in this agreement and will not
disclose any confidential information. The employer shall pay a salary: 450 000 FCFA
per month for the services described in this agreement, and any dispute between
the parties shall be resolved as described in this agreement.`

type storedText struct {
	text string
	lang constants.Language
}

// memStore is an in-memory ContractStore recording every status write.
type memStore struct {
	mu           sync.Mutex
	contracts    map[uuid.UUID]*entity.Contract
	texts        map[uuid.UUID]storedText
	statusLog    []constants.ContractStatus
	getTextCalls int
}

func newMemStore() *memStore {
	return &memStore{
		contracts: make(map[uuid.UUID]*entity.Contract),
		texts:     make(map[uuid.UUID]storedText),
	}
}

func (m *memStore) add(status constants.ContractStatus, text string) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.contracts[id] = &entity.Contract{
		ID:         id,
		Filename:   "contract.docx",
		FileExt:    ".docx",
		Status:     status,
		UploadedAt: time.Now(),
	}
	if text != "" {
		m.texts[id] = storedText{text: text, lang: constants.LangEnglish}
	}
	return id
}

func (m *memStore) get(id uuid.UUID) entity.Contract {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.contracts[id]
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contracts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memStore) GetText(_ context.Context, id uuid.UUID) (string, constants.Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getTextCalls++
	if _, ok := m.contracts[id]; !ok {
		return "", "", common.ErrNotFound
	}
	st := m.texts[id]
	return st.text, st.lang, nil
}

func (m *memStore) SetStatus(_ context.Context, id uuid.UUID, status constants.ContractStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contracts[id].Status = status
	m.statusLog = append(m.statusLog, status)
	return nil
}

func (m *memStore) SaveExtraction(_ context.Context, id uuid.UUID, res entity.ExtractedText, degraded bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[id] = storedText{text: res.Text, lang: res.Language}
	m.contracts[id].Language = string(res.Language)
	m.contracts[id].Degraded = degraded
	return nil
}

func (m *memStore) MarkFailed(ctx context.Context, id uuid.UUID, kind, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.contracts[id]
	c.Status = constants.StatusFailed
	c.ErrorKind = kind
	c.ErrorMessage = message
	m.statusLog = append(m.statusLog, constants.StatusFailed)
	return nil
}

func (m *memStore) MarkCompleted(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.contracts[id]
	c.Status = constants.StatusCompleted
	c.ErrorKind = ""
	c.ErrorMessage = ""
	now := time.Now()
	c.ProcessedAt = &now
	m.statusLog = append(m.statusLog, constants.StatusCompleted)
	return nil
}

type memEntities struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]entity.Entity
}

func (m *memEntities) ReplaceForContract(_ context.Context, contractID uuid.UUID, ents []entity.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows == nil {
		m.rows = make(map[uuid.UUID][]entity.Entity)
	}
	m.rows[contractID] = ents
	return nil
}

type memSummaries struct {
	mu   sync.Mutex
	rows []entity.Summary
}

func (m *memSummaries) Create(_ context.Context, contractID uuid.UUID, tier constants.Tier, draft entity.SummaryDraft) (*entity.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sum := entity.Summary{
		ID:         uuid.New(),
		ContractID: contractID,
		Tier:       tier,
		Content:    draft.Content,
		Confidence: draft.Confidence,
		WordCount:  draft.WordCount,
		ModelName:  draft.ModelName,
		CreatedAt:  time.Now(),
	}
	m.rows = append(m.rows, sum)
	return &sum, nil
}

type fakeExtractor struct {
	res     entity.ExtractedText
	err     error
	boom    bool
	entered chan struct{}
	release chan struct{}
}

func (f *fakeExtractor) Extract(_ context.Context, _ entity.Document) (entity.ExtractedText, error) {
	if f.entered != nil {
		close(f.entered)
	}
	if f.release != nil {
		<-f.release
	}
	if f.boom {
		panic("extractor exploded")
	}
	return f.res, f.err
}

type nopTagger struct{}

func (nopTagger) TagEntities(context.Context, llm.TagRequest) ([]llm.TaggedEntity, []byte, error) {
	return nil, nil, nil
}

type stubModel struct {
	mu    sync.Mutex
	reply string
	err   error
}

func (s *stubModel) Generate(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubModel) ModelName() string { return "stub-model" }

// cancellingModel cancels the caller's context mid-generation and then fails
// with it, the shape of a generation racing a client disconnect.
type cancellingModel struct {
	cancel context.CancelFunc
}

func (m *cancellingModel) Generate(ctx context.Context, _ string) (string, error) {
	m.cancel()
	<-ctx.Done()
	return "", ctx.Err()
}

func (m *cancellingModel) ModelName() string { return "stub-model" }

func (s *stubModel) set(reply string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply, s.err = reply, err
}

// briefReply is 120 words, inside the brief band.
func briefReply() string {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString("The employee shall receive a salary each month. ")
	}
	return strings.TrimSpace(sb.String())
}

type rig struct {
	store *memStore
	ents  *memEntities
	sums  *memSummaries
	xtr   *fakeExtractor
	model *stubModel
	proc  *Processor
}

func newRig() *rig {
	store := newMemStore()
	ents := &memEntities{}
	sums := &memSummaries{}
	xtr := &fakeExtractor{res: entity.ExtractedText{Text: contractText, Format: "docx", Pages: 1}}
	model := &stubModel{reply: briefReply()}

	registry := ner.NewRegistry(&ner.ModelHandle{
		Language:  constants.LangEnglish,
		ModelName: "test-model",
		Tagger:    nopTagger{},
	})
	extract := NewExtractStage(
		store, ents, xtr,
		langdetect.NewDetector(langdetect.Config{}, nil),
		ner.NewExtractor(registry, ner.Config{MaxConcurrent: 1}, nil),
		nil,
	)
	sumStage := NewSummarizeStage(store, sums, summarize.NewGenerator(model, summarize.Config{}, nil), SummarizeConfig{}, nil)

	return &rig{
		store: store,
		ents:  ents,
		sums:  sums,
		xtr:   xtr,
		model: model,
		proc:  NewProcessor(nil, extract, sumStage, store),
	}
}

func doc() entity.Document {
	return entity.Document{Bytes: []byte("raw"), Filename: "contract.docx", Ext: ".docx", Size: 3}
}

func TestProcessContractLifecycle(t *testing.T) {
	r := newRig()
	id := r.store.add(constants.StatusPending, "")

	require.NoError(t, r.proc.ProcessContract(context.Background(), id, doc()))

	c := r.store.get(id)
	require.Equal(t, constants.StatusExtracted, c.Status)
	require.Equal(t, string(constants.LangEnglish), c.Language)
	require.False(t, c.Degraded)
	require.Equal(t,
		[]constants.ContractStatus{constants.StatusExtracting, constants.StatusExtracted},
		r.store.statusLog)

	require.Equal(t, contractText, r.store.texts[id].text)

	// the labeled amount is picked up by the pattern pass and stamped with
	// the contract id
	rows := r.ents.rows[id]
	require.NotEmpty(t, rows)
	for _, e := range rows {
		require.Equal(t, id, e.ContractID)
	}
}

func TestProcessContractCorruptDocument(t *testing.T) {
	r := newRig()
	r.xtr.res = entity.ExtractedText{}
	r.xtr.err = fmt.Errorf("bad zip: %w", common.ErrCorruptDocument)
	id := r.store.add(constants.StatusPending, "")

	err := r.proc.ProcessContract(context.Background(), id, doc())
	require.ErrorIs(t, err, common.ErrCorruptDocument)

	c := r.store.get(id)
	require.Equal(t, constants.StatusFailed, c.Status)
	require.Equal(t, "CORRUPT_DOCUMENT", c.ErrorKind)
	require.NotEmpty(t, c.ErrorMessage)
}

func TestProcessContractRejectsInFlightStatus(t *testing.T) {
	r := newRig()
	id := r.store.add(constants.StatusSummarizing, "")

	err := r.proc.ProcessContract(context.Background(), id, doc())
	require.ErrorIs(t, err, common.ErrInvalidTransition)
	require.Empty(t, r.store.statusLog, "no status write on a refused transition")
}

func TestGenerateSummaryLifecycle(t *testing.T) {
	r := newRig()
	id := r.store.add(constants.StatusExtracted, contractText)

	sum, err := r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.NoError(t, err)
	require.Equal(t, constants.TierBrief, sum.Tier)
	require.Equal(t, "stub-model", sum.ModelName)
	require.GreaterOrEqual(t, sum.WordCount, 100)

	c := r.store.get(id)
	require.Equal(t, constants.StatusCompleted, c.Status)
	require.NotNil(t, c.ProcessedAt)
	require.Equal(t,
		[]constants.ContractStatus{constants.StatusSummarizing, constants.StatusCompleted},
		r.store.statusLog)
}

func TestGenerateSummaryFailureKeepsTextForRetry(t *testing.T) {
	r := newRig()
	r.model.set("", errors.New("model offline"))
	id := r.store.add(constants.StatusExtracted, contractText)

	_, err := r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.ErrorIs(t, err, common.ErrGenerationFailed)

	c := r.store.get(id)
	require.Equal(t, constants.StatusFailed, c.Status)
	require.Equal(t, "GENERATION_FAILED", c.ErrorKind)
	require.Equal(t, contractText, r.store.texts[id].text, "extracted text survives the failure")

	// retry goes straight back to summarization, no extractor involvement
	r.model.set(briefReply(), nil)
	sum, err := r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.NoError(t, err)
	require.NotNil(t, sum)
	require.Equal(t, constants.StatusCompleted, r.store.get(id).Status)
}

func TestGenerateSummaryCallerCancelStillMarksFailed(t *testing.T) {
	r := newRig()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.proc.Summarize = NewSummarizeStage(
		r.store, r.sums,
		summarize.NewGenerator(&cancellingModel{cancel: cancel}, summarize.Config{}, nil),
		SummarizeConfig{}, nil,
	)
	id := r.store.add(constants.StatusExtracted, contractText)

	_, err := r.proc.GenerateSummary(ctx, id, constants.TierBrief)
	require.Error(t, err)

	c := r.store.get(id)
	require.Equal(t, constants.StatusFailed, c.Status,
		"the failure write must not ride the canceled caller context")
	require.NotEmpty(t, c.ErrorKind)
}

func TestGenerateSummaryWithoutTextRejected(t *testing.T) {
	r := newRig()
	id := r.store.add(constants.StatusExtracted, "")

	_, err := r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.ErrorIs(t, err, common.ErrInvalidInput)
	require.Equal(t, constants.StatusExtracted, r.store.get(id).Status, "rejected before any transition")
}

func TestGenerateSummaryAppendsFromCompleted(t *testing.T) {
	r := newRig()
	id := r.store.add(constants.StatusExtracted, contractText)

	_, err := r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.NoError(t, err)
	_, err = r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.NoError(t, err)

	require.Len(t, r.sums.rows, 2, "regeneration appends, never overwrites")
}

func TestGenerateSummaryCachesText(t *testing.T) {
	r := newRig()
	id := r.store.add(constants.StatusExtracted, contractText)

	_, err := r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.NoError(t, err)
	_, err = r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.NoError(t, err)

	require.Equal(t, 1, r.store.getTextCalls, "second run served from the cache")
}

func TestConcurrentRunsRefused(t *testing.T) {
	r := newRig()
	r.xtr.entered = make(chan struct{})
	r.xtr.release = make(chan struct{})
	id := r.store.add(constants.StatusPending, "")

	done := make(chan error, 1)
	go func() { done <- r.proc.ProcessContract(context.Background(), id, doc()) }()
	<-r.xtr.entered

	_, err := r.proc.GenerateSummary(context.Background(), id, constants.TierBrief)
	require.ErrorIs(t, err, common.ErrAlreadyProcessing)

	close(r.xtr.release)
	require.NoError(t, <-done)
}

func TestPanicDuringStageMarksFailed(t *testing.T) {
	r := newRig()
	r.xtr.boom = true
	id := r.store.add(constants.StatusPending, "")

	err := r.proc.ProcessContract(context.Background(), id, doc())
	require.Error(t, err)
	require.Contains(t, err.Error(), "panic")

	c := r.store.get(id)
	require.Equal(t, constants.StatusFailed, c.Status)
	require.Equal(t, "INTERNAL", c.ErrorKind)
}
