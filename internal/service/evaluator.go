package service

import (
	"context"

	"go_huruf_practice/internal/model"
)

// Evaluator は録音された発音を採点するコラボレータのインターフェースです。
// 実際の発音評価モデルへの差し替えを想定して注入可能にしてあります。
type Evaluator interface {
	// Evaluate は音声参照と対象文字から正誤と信頼度 [0,1] を返します。
	Evaluate(ctx context.Context, audioURI string, target *model.Letter) (correct bool, confidence float64, err error)
}

// StubEvaluator は常に「正解」と判定するスタブ実装です。
// 評価モデル導入までのプレースホルダ。
type StubEvaluator struct {
	Confidence float64
}

func NewStubEvaluator() *StubEvaluator {
	return &StubEvaluator{Confidence: 1.0}
}

func (e *StubEvaluator) Evaluate(ctx context.Context, audioURI string, target *model.Letter) (bool, float64, error) {
	return true, e.Confidence, nil
}
