package ai

import "context"

// ErrClassifier fails every classification with a fixed error. Wired
// in place of the real classifier when OPENAI_API_KEY is absent: the
// moderation service absorbs the failure by marking the video
// "error", which is exactly what a misconfigured instance should
// produce.
type ErrClassifier struct {
	Err error
}

func Unconfigured(err error) *ErrClassifier {
	return &ErrClassifier{Err: err}
}

func (e *ErrClassifier) ClassifyCaption(ctx context.Context, text string) (string, error) {
	return "", e.Err
}
