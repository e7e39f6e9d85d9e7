package test_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sda-clothing/storefront/internal"
	"github.com/sda-clothing/storefront/internal/model"
)

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})
	Context("Repository tests", func() {
		pending := model.PendingPayment{
			OrderID:         42,
			UserID:          7,
			TotalAmount:     decimal.NewFromInt(4500),
			ShippingPhone:   "+923001234567",
			ShippingAddress: "12 Main St",
			Notes:           "leave at the gate",
		}

		It("SavePending without error", func() {
			mock.ExpectExec("INSERT INTO pending_payments (.+) VALUES (.+) ON CONFLICT \\(order_id\\) DO NOTHING").
				WithArgs(pending.OrderID, pending.UserID, pending.TotalAmount, pending.ShippingPhone, pending.ShippingAddress, pending.Notes).
				WillReturnResult(sqlmock.NewResult(1, 1))

			err := repo.SavePending(context.Background(), pending)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("SavePending with error", func() {
			mock.ExpectExec("INSERT INTO pending_payments (.+) VALUES (.+) ON CONFLICT \\(order_id\\) DO NOTHING").
				WithArgs().WillReturnError(errors.New("some error"))

			err := repo.SavePending(context.Background(), pending)
			Expect(err).Should(HaveOccurred())
		})
		It("CompletePending without error", func() {
			mock.ExpectExec("UPDATE pending_payments SET completed_at = now\\(\\) WHERE order_id = \\$1").
				WithArgs(pending.OrderID).WillReturnResult(sqlmock.NewResult(1, 1))

			err := repo.CompletePending(context.Background(), pending.OrderID)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("GetPending without error", func() {
			expectedRows := sqlmock.NewRows([]string{
				"OrderID",
				"UserID",
				"TotalAmount",
				"ShippingPhone",
				"ShippingAddress",
				"Notes",
			}).AddRow(pending.OrderID, pending.UserID, pending.TotalAmount, pending.ShippingPhone, pending.ShippingAddress, pending.Notes)

			mock.ExpectQuery("SELECT (.+) FROM pending_payments WHERE order_id = \\$1 AND user_id = \\$2 AND completed_at IS NULL").
				WithArgs(pending.OrderID, pending.UserID).WillReturnRows(expectedRows).RowsWillBeClosed()

			got, err := repo.GetPending(context.Background(), pending.UserID, pending.OrderID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got.ShippingAddress).To(Equal(pending.ShippingAddress))
		})
		It("GetPending maps no rows to ErrNoRecords", func() {
			mock.ExpectQuery("SELECT (.+) FROM pending_payments WHERE order_id = \\$1 AND user_id = \\$2 AND completed_at IS NULL").
				WithArgs(pending.OrderID, pending.UserID).WillReturnRows(sqlmock.NewRows([]string{"OrderID"}))

			_, err := repo.GetPending(context.Background(), pending.UserID, pending.OrderID)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
		It("ListPending without error", func() {
			expectedRows := sqlmock.NewRows([]string{
				"OrderID",
				"UserID",
				"TotalAmount",
				"ShippingPhone",
				"ShippingAddress",
				"Notes",
			}).AddRow(pending.OrderID, pending.UserID, pending.TotalAmount, pending.ShippingPhone, pending.ShippingAddress, pending.Notes)

			mock.ExpectQuery("SELECT (.+) FROM pending_payments WHERE user_id = \\$1 AND completed_at IS NULL ORDER BY created_at DESC").
				WithArgs(pending.UserID).WillReturnRows(expectedRows).RowsWillBeClosed()

			got, err := repo.ListPending(context.Background(), pending.UserID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got).To(HaveLen(1))
		})
		It("ListPending with error", func() {
			mock.ExpectQuery("SELECT (.+) FROM pending_payments WHERE user_id = \\$1 AND completed_at IS NULL ORDER BY created_at DESC").
				WithArgs(pending.UserID).WillReturnError(errors.New("some error"))

			_, err := repo.ListPending(context.Background(), pending.UserID)
			Expect(err).Should(HaveOccurred())
		})
	})
})
