package usecase

import (
	"context"
	"strings"

	"voice-calendar-assistant/internal/event"
	"voice-calendar-assistant/internal/model"
)

// HandleVoice transcribes the audio and executes the result like Handle.
func (uc *implUseCase) HandleVoice(ctx context.Context, sc model.Scope, input event.VoiceInput) (event.HandleOutput, error) {
	if uc.transcriber == nil {
		return event.HandleOutput{}, event.ErrTranscription
	}
	if len(input.Audio) == 0 {
		return event.HandleOutput{}, event.ErrEmptyAudio
	}

	transcript, err := uc.transcriber.Transcribe(ctx, input.Audio, input.Language)
	if err != nil {
		uc.l.Errorf(ctx, "transcriber.Transcribe (%s): %v", uc.transcriber.Name(), err)
		return event.HandleOutput{}, event.ErrTranscription
	}

	utterance := strings.TrimSpace(transcript.Text)
	if utterance == "" {
		return event.HandleOutput{}, event.ErrEmptyUtterance
	}
	uc.l.Info(ctx, "voice transcript",
		"engine", uc.transcriber.Name(),
		"language", transcript.Language,
		"text", utterance,
	)

	out, err := uc.Handle(ctx, sc, event.HandleInput{
		Utterance:  utterance,
		CalendarID: input.CalendarID,
		Now:        input.Now,
	})
	if err != nil {
		return event.HandleOutput{}, err
	}

	out.Utterance = utterance
	return out, nil
}
