package service

import "creator_insight_backend/internal/util"

// Result 携带数据来源，Reason 记录回退到演示数据的原因
type Result[T any] struct {
	Data   T
	Source string
	Reason error
}

func live[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: util.SourceLive}
}

func fallback[T any](data T, reason error) Result[T] {
	return Result[T]{Data: data, Source: util.SourceFallback, Reason: reason}
}

func (r Result[T]) IsFallback() bool {
	return r.Source == util.SourceFallback
}
