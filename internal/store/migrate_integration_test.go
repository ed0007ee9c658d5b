// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

//go:build integration

package store_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/memberdash/memberdash/internal/store"
)

var _ = Describe("Migrator", Ordered, func() {
	var migrator *store.Migrator

	BeforeAll(func() {
		var err error
		migrator, err = store.NewMigrator(env.connStr)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterAll(func() {
		// Leave the schema at the latest version for the repository specs.
		Expect(migrator.Up()).To(Succeed())
		Expect(migrator.Close()).To(Succeed())
		// Pooled connections cache statements against the dropped enum types.
		env.pool.Reset()
	})

	It("starts at the latest version with nothing pending", func() {
		version, dirty, err := migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(uint(2)))
		Expect(dirty).To(BeFalse())

		pending, err := migrator.PendingMigrations()
		Expect(err).NotTo(HaveOccurred())
		Expect(pending).To(BeEmpty())

		applied, err := migrator.AppliedMigrations()
		Expect(err).NotTo(HaveOccurred())
		Expect(applied).To(Equal([]uint{1, 2}))
	})

	It("treats a repeated Up as a no-op", func() {
		Expect(migrator.Up()).To(Succeed())
	})

	It("steps down and back up one version", func() {
		Expect(migrator.Steps(-1)).To(Succeed())

		version, _, err := migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(uint(1)))

		pending, err := migrator.PendingMigrations()
		Expect(err).NotTo(HaveOccurred())
		Expect(pending).To(Equal([]uint{2}))

		Expect(migrator.Steps(1)).To(Succeed())
		version, _, err = migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(uint(2)))
	})

	It("rolls everything back with Down", func() {
		Expect(migrator.Down()).To(Succeed())

		version, dirty, err := migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(uint(0)))
		Expect(dirty).To(BeFalse())

		var exists bool
		Expect(env.pool.QueryRow(env.ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'members')`,
		).Scan(&exists)).To(Succeed())
		Expect(exists).To(BeFalse())
	})

	It("forces a version without running migrations", func() {
		Expect(migrator.Up()).To(Succeed())
		Expect(migrator.Force(1)).To(Succeed())

		version, dirty, err := migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(uint(1)))
		Expect(dirty).To(BeFalse())

		// The second migration is idempotent, so re-applying it is safe.
		Expect(migrator.Up()).To(Succeed())
		version, _, err = migrator.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(uint(2)))
	})
})
