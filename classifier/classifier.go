package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chanyoung/sajinmal/config"
	ort "github.com/yalue/onnxruntime_go"
)

// defaultClassCount sizes the placeholder label set when the model does not
// report a static output width.
const defaultClassCount = 1000

type loadFlight struct {
	done chan struct{}
	err  error
}

// Classifier is an explicit model handle owned by the caller. It loads the
// model lazily on first use and may be reloaded after Close. The zero value
// is not usable; construct with New.
type Classifier struct {
	cfg config.Config

	mu          sync.Mutex
	flight      *loadFlight
	session     *ort.AdvancedSession
	input       *ort.Tensor[float32]
	output      *ort.Tensor[float32]
	labels      []string
	placeholder bool

	// runMu serializes Run calls over the shared input/output tensors.
	runMu sync.Mutex
}

func New(cfg config.Config) *Classifier {
	if cfg.InputSize <= 0 {
		cfg.InputSize = 224
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	return &Classifier{cfg: cfg}
}

// Load downloads the model weights and label file if absent and creates the
// inference session. Concurrent callers share a single in-flight load; a
// waiting caller's context cancels its wait, not the load itself.
func (c *Classifier) Load(ctx context.Context, opts LoadOptions) error {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		return nil
	}
	if f := c.flight; f != nil {
		c.mu.Unlock()
		select {
		case <-f.done:
			if f.err != nil {
				return f.err
			}
			return nil
		case <-ctx.Done():
			return NewError(CodeModelLoad, "모델 로딩 대기가 취소되었습니다", ctx.Err())
		}
	}
	f := &loadFlight{done: make(chan struct{})}
	c.flight = f
	c.mu.Unlock()

	err := c.doLoad(ctx, opts)

	c.mu.Lock()
	c.flight = nil
	c.mu.Unlock()
	if err != nil {
		f.err = NewError(CodeModelLoad, "모델을 불러오지 못했습니다", err)
	}
	close(f.done)
	if f.err != nil {
		return f.err
	}
	return nil
}

func (c *Classifier) doLoad(ctx context.Context, opts LoadOptions) error {
	if err := os.MkdirAll(c.cfg.ModelDir, 0755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	modelPath := filepath.Join(c.cfg.ModelDir, c.cfg.ModelFileName)
	if _, err := os.Stat(modelPath); err != nil {
		slog.Info("Downloading model", slog.String("url", c.cfg.ModelUrl))
		if err := downloadFile(ctx, c.cfg.ModelUrl, modelPath, opts.OnProgress); err != nil {
			return fmt.Errorf("download model: %w", err)
		}
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return fmt.Errorf("get model input/output info: %w", err)
	}
	classCount := outputClassCount(outputs[0].Dimensions)

	labels, placeholder := c.loadLabels(ctx, classCount)
	labels = alignLabels(labels, classCount)

	sessOpts, err := ort.NewSessionOptions()
	if err != nil {
		return fmt.Errorf("create session options: %w", err)
	}
	defer sessOpts.Destroy()

	size := c.cfg.InputSize
	inputTensor, err := ort.NewTensor(ort.NewShape(1, 3, int64(size), int64(size)), make([]float32, 3*size*size))
	if err != nil {
		return fmt.Errorf("create input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(labels))))
	if err != nil {
		inputTensor.Destroy()
		return fmt.Errorf("create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		[]ort.Value{inputTensor},
		[]ort.Value{outputTensor},
		sessOpts,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return fmt.Errorf("create session: %w", err)
	}

	c.mu.Lock()
	c.session = session
	c.input = inputTensor
	c.output = outputTensor
	c.labels = labels
	c.placeholder = placeholder
	c.mu.Unlock()

	slog.Info("Model loaded",
		slog.Int("classes", len(labels)),
		slog.Bool("placeholder_labels", placeholder))
	return nil
}

// loadLabels reads the cached label file or fetches it. Any failure degrades
// to class_N placeholders sized to the model's output width; captions built
// on them are meaningless, so the degradation is logged loudly and surfaced
// via Status.
func (c *Classifier) loadLabels(ctx context.Context, classCount int) ([]string, bool) {
	path := filepath.Join(c.cfg.ModelDir, c.cfg.LabelsFileName)
	if labels, err := readLabelFile(path); err == nil && len(labels) > 0 {
		return labels, false
	}
	labels, err := fetchLabels(ctx, c.cfg.LabelsUrl)
	if err != nil {
		slog.Warn("Label file unreachable, falling back to class_N placeholders",
			slog.String("url", c.cfg.LabelsUrl),
			slog.String("error", err.Error()))
		if classCount <= 0 {
			classCount = defaultClassCount
		}
		return placeholderLabels(classCount), true
	}
	if err := os.WriteFile(path, []byte(strings.Join(labels, "\n")+"\n"), 0644); err != nil {
		slog.Warn("Failed to cache label file", slog.String("error", err.Error()))
	}
	return labels, false
}

// outputClassCount reads the class count from the model's output shape,
// zero when the trailing dimension is dynamic.
func outputClassCount(dims ort.Shape) int {
	if len(dims) == 0 {
		return 0
	}
	last := dims[len(dims)-1]
	if last <= 0 {
		return 0
	}
	return int(last)
}

// alignLabels reconciles the label file with the model's output width so
// index i of the logits always names labels[i]. A single extra leading entry
// is the conventional background line and is dropped; any other mismatch is
// truncated or padded with placeholders, with a warning either way.
func alignLabels(labels []string, classCount int) []string {
	if classCount <= 0 || len(labels) == classCount {
		return labels
	}
	if len(labels) == classCount+1 {
		slog.Warn("Label file has one extra leading entry, dropping the background line",
			slog.Int("labels", len(labels)),
			slog.Int("classes", classCount))
		return labels[1:]
	}
	slog.Warn("Label count does not match model output width",
		slog.Int("labels", len(labels)),
		slog.Int("classes", classCount))
	if len(labels) > classCount {
		return labels[:classCount]
	}
	aligned := make([]string, classCount)
	copy(aligned, labels)
	copy(aligned[len(labels):], placeholderLabels(classCount)[len(labels):])
	return aligned
}

// Classify runs the model on src and returns the top-K classifications
// sorted by descending probability. The model is loaded on first use.
func (c *Classifier) Classify(ctx context.Context, src any, opts Options) ([]Classification, error) {
	img, err := DecodeImage(src)
	if err != nil {
		return nil, NewError(CodeInvalidImage, "이미지를 해석할 수 없습니다", err)
	}
	if err := c.Load(ctx, opts.Load); err != nil {
		return nil, err
	}

	size := c.cfg.InputSize
	if opts.TargetSize != 0 && opts.TargetSize != size {
		return nil, NewError(CodeClassify, "지원하지 않는 입력 크기입니다",
			fmt.Errorf("model expects %d, got %d", size, opts.TargetSize))
	}
	data := Preprocess(img, size, c.cfg.Normalize && !opts.NoNormalize)

	k := opts.MaxResults
	if k <= 0 {
		k = c.cfg.TopK
	}

	// Close also takes runMu before destroying the tensors, so re-reading
	// the session under it guarantees the native objects stay alive for the
	// whole Run.
	c.runMu.Lock()
	c.mu.Lock()
	session, input, output, labels := c.session, c.input, c.output, c.labels
	c.mu.Unlock()
	if session == nil {
		c.runMu.Unlock()
		return nil, NewError(CodeClassify, "모델이 초기화되지 않았습니다", errors.New("classifier closed"))
	}
	copy(input.GetData(), data)
	runErr := session.Run()
	var logits []float32
	if runErr == nil {
		out := output.GetData()
		logits = make([]float32, len(out))
		copy(logits, out)
	}
	c.runMu.Unlock()
	if runErr != nil {
		return nil, NewError(CodeClassify, "이미지 분류에 실패했습니다", runErr)
	}

	return TopK(Softmax(logits), labels, k), nil
}

// Warmup loads the model without classifying anything.
func (c *Classifier) Warmup(ctx context.Context, opts LoadOptions) error {
	return c.Load(ctx, opts)
}

func (c *Classifier) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Loaded:            c.session != nil,
		ClassCount:        len(c.labels),
		PlaceholderLabels: c.placeholder,
	}
}

// Close waits for any in-flight load, releases the session's native
// resources and resets the handle to its unloaded state. It is idempotent;
// a later Load works again.
func (c *Classifier) Close() error {
	for {
		c.mu.Lock()
		f := c.flight
		c.mu.Unlock()
		if f == nil {
			break
		}
		<-f.done
	}

	c.runMu.Lock()
	defer c.runMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.session != nil {
		errs = append(errs, c.session.Destroy())
	}
	if c.input != nil {
		errs = append(errs, c.input.Destroy())
	}
	if c.output != nil {
		errs = append(errs, c.output.Destroy())
	}
	c.session = nil
	c.input = nil
	c.output = nil
	c.labels = nil
	c.placeholder = false
	return errors.Join(errs...)
}
