// Package analysis orchestrates the full pipeline: clean documents,
// run KNN or clustering or the lexicon heuristic, evaluate against
// ground truth, and record the run.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/HananMiftah/TweetClassifier/internal/cluster"
	"github.com/HananMiftah/TweetClassifier/internal/config"
	"github.com/HananMiftah/TweetClassifier/internal/dataset"
	"github.com/HananMiftah/TweetClassifier/internal/distance"
	"github.com/HananMiftah/TweetClassifier/internal/evaluate"
	"github.com/HananMiftah/TweetClassifier/internal/knn"
	"github.com/HananMiftah/TweetClassifier/internal/lexicon"
	"github.com/HananMiftah/TweetClassifier/internal/models"
	"github.com/HananMiftah/TweetClassifier/internal/storage"
	"github.com/HananMiftah/TweetClassifier/internal/textnorm"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine runs classification and clustering analyses.
type Engine struct {
	loader   *dataset.Loader
	lexicon  *lexicon.Lexicon
	store    storage.Store
	analysis config.AnalysisConfig
	datasets []config.DatasetConfig
	logger   *zap.Logger
}

// NewEngine creates an analysis engine with the given dependencies.
// store may be nil, in which case runs are not recorded.
func NewEngine(
	loader *dataset.Loader,
	lex *lexicon.Lexicon,
	store storage.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		loader:   loader,
		lexicon:  lex,
		store:    store,
		analysis: cfg.Analysis,
		datasets: cfg.Datasets,
		logger:   logger,
	}
}

// LoadDataset loads a dataset by configured name or, failing that, by
// treating the argument as a file path.
func (e *Engine) LoadDataset(nameOrPath string) (*models.Dataset, error) {
	path := nameOrPath
	for _, ds := range e.datasets {
		if ds.Name == nameOrPath {
			path = ds.Path
			break
		}
	}
	return e.loader.Load(path)
}

// DatasetFromInputs builds an ad-hoc dataset from inline documents.
func DatasetFromInputs(inputs []models.DocumentInput) *models.Dataset {
	docs := make([]models.Document, len(inputs))
	for i, in := range inputs {
		docs[i] = models.Document{
			ID:         uuid.New().String()[:8],
			Text:       in.Text,
			Normalized: textnorm.Normalize(in.Text),
			Label:      strings.ToLower(strings.TrimSpace(in.Label)),
		}
	}
	return &models.Dataset{Name: "inline", Documents: docs}
}

// Classify predicts a label for one query text against the dataset's
// labeled documents.
func (e *Engine) Classify(ctx context.Context, ds *models.Dataset, req *models.ClassifyRequest) (*models.ClassifyReport, error) {
	startTime := time.Now()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reference := referenceSet(ds)
	if len(reference) == 0 {
		e.logger.Warn("dataset has no labeled documents, prediction falls back to the default label",
			zap.String("dataset", ds.Name))
	}

	params := knn.Params{K: req.K, VoteType: req.Vote, DistanceType: req.Metric}
	predicted := knn.Classify(textnorm.Normalize(req.Query), reference, params)

	e.logger.Debug("classified query",
		zap.String("dataset", ds.Name),
		zap.String("predicted", predicted),
		zap.Int("k", req.K),
		zap.String("metric", req.Metric))

	return &models.ClassifyReport{
		Dataset: ds.Name,
		Kind:    models.RunKindKNN,
		K:       req.K,
		Vote:    req.Vote,
		Metric:  req.Metric,
		Predictions: []models.Prediction{{
			ID:        uuid.New().String()[:8],
			Text:      req.Query,
			Predicted: predicted,
		}},
		QueryTime: time.Since(startTime).Milliseconds(),
	}, nil
}

// EvaluateKNN runs leave-one-out evaluation over the dataset's labeled
// documents: each one is classified against all the others.
func (e *Engine) EvaluateKNN(ctx context.Context, ds *models.Dataset, req *models.ClassifyRequest) (*models.ClassifyReport, error) {
	startTime := time.Now()
	req.ApplyDefaults()

	labeled := labeledDocuments(ds)
	if len(labeled) == 0 {
		return nil, fmt.Errorf("dataset %s has no labeled documents to evaluate", ds.Name)
	}

	params := knn.Params{K: req.K, VoteType: req.Vote, DistanceType: req.Metric}
	predictions := make([]models.Prediction, 0, len(labeled))
	predicted := make([]string, 0, len(labeled))
	truth := make([]string, 0, len(labeled))
	ref := make([]knn.Example, 0, len(labeled))

	for i, doc := range labeled {
		ref = ref[:0]
		for j, other := range labeled {
			if j == i {
				continue
			}
			ref = append(ref, knn.Example{Text: other.Normalized, Label: other.Label})
		}
		p := knn.Classify(doc.Normalized, ref, params)
		predictions = append(predictions, models.Prediction{
			ID:        doc.ID,
			Text:      doc.Text,
			Label:     doc.Label,
			Predicted: p,
		})
		predicted = append(predicted, p)
		truth = append(truth, doc.Label)
	}

	result := evaluate.Predictions(predicted, truth)
	report := &models.ClassifyReport{
		Dataset:     ds.Name,
		Kind:        models.RunKindKNN,
		K:           req.K,
		Vote:        req.Vote,
		Metric:      req.Metric,
		Predictions: predictions,
		Evaluation:  &result,
		QueryTime:   time.Since(startTime).Milliseconds(),
	}

	e.recordRun(ctx, models.RunKindKNN, ds.Name, map[string]interface{}{
		"k":      req.K,
		"vote":   req.Vote,
		"metric": req.Metric,
		"eval":   "leave-one-out",
	}, result.Accuracy, result.RandIndex)

	e.logger.Info("knn evaluation complete",
		zap.String("dataset", ds.Name),
		zap.Int("documents", len(labeled)),
		zap.Float64("accuracy", result.Accuracy),
		zap.Int64("query_time_ms", report.QueryTime))

	return report, nil
}

// Cluster runs hierarchical clustering, flat extraction, and, when the
// dataset is fully labeled, evaluation.
func (e *Engine) Cluster(ctx context.Context, ds *models.Dataset, req *models.ClusterRequest) (*models.ClusterReport, error) {
	startTime := time.Now()
	req.ApplyDefaults()

	n := len(ds.Documents)
	if max := e.analysis.MaxDocuments; max > 0 && n > max {
		return nil, fmt.Errorf("dataset %s has %d documents, clustering is limited to %d", ds.Name, n, max)
	}

	metric := distance.ByName(req.Metric)
	matrix := cluster.NewDistanceMatrix(ds.NormalizedTexts(), metric)
	merges := cluster.Linkage(matrix, cluster.ParseMethod(req.Method))
	assignment := cluster.Extract(merges, req.Clusters, n)

	var result *evaluate.Result
	var repLabels map[int]string
	if n > 0 && ds.LabeledCount() == n {
		r := evaluate.Clusters(assignment, ds.Labels())
		result = &r
		repLabels = evaluate.RepresentativeLabels(assignment, ds.Labels())
	}

	report := &models.ClusterReport{
		Dataset:    ds.Name,
		Method:     req.Method,
		Metric:     req.Metric,
		K:          req.Clusters,
		Dendrogram: merges,
		Assignment: assignment,
		Clusters:   clusterSummaries(ds, assignment, repLabels),
		Evaluation: result,
		QueryTime:  time.Since(startTime).Milliseconds(),
	}

	accuracy, randIndex := 0.0, 0.0
	if result != nil {
		accuracy, randIndex = result.Accuracy, result.RandIndex
	}
	e.recordRun(ctx, models.RunKindCluster, ds.Name, map[string]interface{}{
		"method":   req.Method,
		"metric":   req.Metric,
		"clusters": req.Clusters,
	}, accuracy, randIndex)

	e.logger.Info("clustering complete",
		zap.String("dataset", ds.Name),
		zap.Int("documents", n),
		zap.Int("clusters", len(report.Clusters)),
		zap.Float64("accuracy", accuracy),
		zap.Int64("query_time_ms", report.QueryTime))

	return report, nil
}

// EvaluateLexicon predicts every document with the word-list heuristic
// and evaluates when the dataset is fully labeled.
func (e *Engine) EvaluateLexicon(ctx context.Context, ds *models.Dataset) (*models.ClassifyReport, error) {
	startTime := time.Now()

	predictions := make([]models.Prediction, 0, len(ds.Documents))
	predicted := make([]string, 0, len(ds.Documents))
	for _, doc := range ds.Documents {
		p := e.lexicon.Predict(doc.Normalized)
		predictions = append(predictions, models.Prediction{
			ID:        doc.ID,
			Text:      doc.Text,
			Label:     doc.Label,
			Predicted: p,
		})
		predicted = append(predicted, p)
	}

	var result *evaluate.Result
	if n := len(ds.Documents); n > 0 && ds.LabeledCount() == n {
		r := evaluate.Predictions(predicted, ds.Labels())
		result = &r

		pos, neg := e.lexicon.Size()
		e.recordRun(ctx, models.RunKindLexicon, ds.Name, map[string]interface{}{
			"positive_words": pos,
			"negative_words": neg,
		}, r.Accuracy, r.RandIndex)
	}

	return &models.ClassifyReport{
		Dataset:     ds.Name,
		Kind:        models.RunKindLexicon,
		Predictions: predictions,
		Evaluation:  result,
		QueryTime:   time.Since(startTime).Milliseconds(),
	}, nil
}

// LexiconPredict labels a single raw query with the word-list
// heuristic.
func (e *Engine) LexiconPredict(query string) string {
	return e.lexicon.Predict(textnorm.Normalize(query))
}

// recordRun stores a history row. Failures are logged, not returned;
// the analysis result matters more than its bookkeeping.
func (e *Engine) recordRun(ctx context.Context, kind, dsName string, params map[string]interface{}, accuracy, randIndex float64) {
	if e.store == nil {
		return
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		e.logger.Warn("failed to encode run params", zap.String("kind", kind), zap.Error(err))
		return
	}
	run := &models.Run{
		ID:        uuid.New().String()[:8],
		Kind:      kind,
		Dataset:   dsName,
		Params:    string(encoded),
		Accuracy:  accuracy,
		RandIndex: randIndex,
	}
	if err := e.store.SaveRun(ctx, run); err != nil {
		e.logger.Warn("failed to record run", zap.String("kind", kind), zap.Error(err))
	}
}

// referenceSet converts labeled documents into classifier examples.
func referenceSet(ds *models.Dataset) []knn.Example {
	examples := make([]knn.Example, 0, len(ds.Documents))
	for _, doc := range ds.Documents {
		if doc.Label == "" {
			continue
		}
		examples = append(examples, knn.Example{Text: doc.Normalized, Label: doc.Label})
	}
	return examples
}

// labeledDocuments returns the documents carrying ground-truth labels,
// in dataset order.
func labeledDocuments(ds *models.Dataset) []models.Document {
	docs := make([]models.Document, 0, len(ds.Documents))
	for _, doc := range ds.Documents {
		if doc.Label != "" {
			docs = append(docs, doc)
		}
	}
	return docs
}

// clusterSummaries groups documents by their assigned cluster id.
// Assignment ids are dense, so the summary count equals the highest id
// plus one.
func clusterSummaries(ds *models.Dataset, assignment []int, repLabels map[int]string) []models.ClusterSummary {
	if len(assignment) == 0 {
		return []models.ClusterSummary{}
	}

	max := 0
	for _, id := range assignment {
		if id > max {
			max = id
		}
	}

	summaries := make([]models.ClusterSummary, max+1)
	for i := range summaries {
		summaries[i] = models.ClusterSummary{ID: i, Members: []string{}}
	}
	for i, id := range assignment {
		summaries[id].Size++
		summaries[id].Members = append(summaries[id].Members, ds.Documents[i].ID)
	}
	for i := range summaries {
		summaries[i].Label = repLabels[i]
	}
	return summaries
}
