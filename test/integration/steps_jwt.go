package integration

import (
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/middleware"
)

func (s *StepsContext) registerJWTSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I hold a token for "([^"]*)"$`, s.iHoldATokenFor)
	sc.Step(`^I hold a token for "([^"]*)" signed with "([^"]*)"$`, s.iHoldATokenSignedWith)
	sc.Step(`^I hold an expired token for "([^"]*)"$`, s.iHoldAnExpiredTokenFor)
	sc.Step(`^I hold the token "([^"]*)"$`, s.iHoldTheToken)
}

func (s *StepsContext) iHoldATokenFor(subject string) error {
	return s.iHoldATokenSignedWith(subject, s.tokenSecret)
}

func (s *StepsContext) iHoldATokenSignedWith(subject, secret string) error {
	token, err := middleware.IssueToken(secret, subject, time.Hour)
	if err != nil {
		return err
	}
	s.authToken = token
	return nil
}

func (s *StepsContext) iHoldAnExpiredTokenFor(subject string) error {
	issued := time.Now().Add(-2 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    middleware.Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(s.tokenSecret))
	if err != nil {
		return err
	}
	s.authToken = signed
	return nil
}

func (s *StepsContext) iHoldTheToken(raw string) error {
	s.authToken = raw
	return nil
}
