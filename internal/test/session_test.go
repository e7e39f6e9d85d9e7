package test_test

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sda-clothing/storefront/internal"
	"github.com/sda-clothing/storefront/internal/backend"
)

var _ = Describe("SessionStore", func() {
	var store internal.ISessions
	secret := "test-secret"

	BeforeEach(func() {
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		store = internal.NewSessionStore("localhost:6379", secret, logger.Sugar())
	})

	Context("cookie parsing", func() {
		It("rejects a garbage cookie", func() {
			_, err := store.Resolve(context.Background(), "not-a-jwt")
			Expect(err).Should(MatchError(backend.ErrAuthRequired))
		})
		It("rejects a cookie signed with a different method, even with the right secret", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
				"sid": "s-1",
				"exp": time.Now().Add(time.Hour).Unix(),
			})
			cookie, err := token.SignedString([]byte(secret))
			Expect(err).ShouldNot(HaveOccurred())

			_, err = store.Resolve(context.Background(), cookie)
			Expect(err).Should(MatchError(backend.ErrAuthRequired))
		})
		It("rejects a destroy with an unsigned cookie", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sid": "s-1"})
			cookie, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
			Expect(err).ShouldNot(HaveOccurred())

			err = store.Destroy(context.Background(), cookie)
			Expect(err).Should(MatchError(backend.ErrAuthRequired))
		})
	})
})
