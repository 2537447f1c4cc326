package tableau

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTableauSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Tableau Catalogue Suite")
}
