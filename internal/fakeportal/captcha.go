package fakeportal

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/utils"
	"github.com/MKhiriev/go-jportal/models"
	"github.com/google/uuid"
)

const captchaLen = 5

// captchaStore holds issued captchas until they are used once.
type captchaStore struct {
	mu      sync.Mutex
	answers map[string]string
}

func newCaptchaStore() *captchaStore {
	return &captchaStore{answers: make(map[string]string)}
}

func (s *captchaStore) issue(answer string) string {
	hidden := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[hidden] = answer
	return hidden
}

func (s *captchaStore) answer(hidden string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	answer, ok := s.answers[hidden]
	return answer, ok
}

// redeem consumes the captcha; a captcha is valid for one login attempt.
func (s *captchaStore) redeem(hidden, answer string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, ok := s.answers[hidden]
	delete(s.answers, hidden)
	return ok && want == answer
}

func (p *Portal) getCaptcha(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	answer, err := utils.RandomCharSeq(captchaLen)
	if err != nil {
		log.Err(err).Msg("error generating captcha")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	img, err := captchaImage(answer)
	if err != nil {
		log.Err(err).Msg("error rendering captcha")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	hidden := p.captchas.issue(answer)
	// The image carries no glyphs; the answer is only available from this log.
	log.Info().Str("hidden", hidden).Str("answer", answer).Msg("captcha issued")

	writeSuccess(w, r, models.CaptchaResponse{Captcha: models.Captcha{Hidden: hidden, Image: img}})
}

// captchaImage renders a small striped PNG whose colours are derived from
// answer and returns it base64 encoded.
func captchaImage(answer string) (string, error) {
	const width, height = 100, 30

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		c := answer[(x/(width/len(answer)))%len(answer)]
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: c, G: byte(x * 2), B: byte(y * 8), A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
