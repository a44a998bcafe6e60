package catalogue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sghaida/singleton/patterns/lazy"
	"github.com/sghaida/singleton/patterns/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestDefault_RegistersPagesInOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		PageImplementation,
		PageAnotherImplementation,
		PageProtocol,
		PageCorrectWay,
	}, Default().Names())

	for _, name := range Default().Names() {
		p := Default().MustGet(name)
		assert.NotEmpty(t, p.Title, name)
		assert.NotNil(t, p.Run, name)
	}
}

// restoreSingletons puts back the state the pages mutate once the test finishes,
// so the pages print the same thing however often they run in one process.
func restoreSingletons(t *testing.T) {
	t.Helper()

	helperName := lazy.Shared().Name
	settingsName := lazy.SharedSettings().Name
	t.Cleanup(func() {
		lazy.Shared().Name = helperName
		lazy.SharedSettings().Name = settingsName
	})
}

// Pages mutate process-wide singletons, so this test does not run in parallel.
// Two rounds check that the output does not depend on an earlier run.
func TestDefault_PageOutput(t *testing.T) {
	for round := 1; round <= 2; round++ {
		t.Run(fmt.Sprintf("round %d", round), func(t *testing.T) {
			restoreSingletons(t)

			baseline := lazy.Shared().Name
			sharedName, sharedSet := protocol.Shared().SharedName()

			cases := []struct {
				name string
				want string
			}{
				{
					name: PageImplementation,
					want: "true\n" + baseline + "\nname 1\nAli\nname\n",
				},
				{
					name: PageAnotherImplementation,
					want: "newName\nname2\n",
				},
				{
					name: PageProtocol,
					want: fmt.Sprintf("sharedName: %q set=%v\n", sharedName, sharedSet) +
						"example.com\n" +
						"shared: *catalogue.offlineLogin does not support capability \"protocol.SharedHelper\"\n",
				},
				{
					name: PageCorrectWay,
					want: "login via *injection.APIClient: user=true\n" +
						"signup via *injection.APIClient: signedUp=true\n" +
						"login via *catalogue.offlineLogin: calls=1\n",
				},
			}

			r := Default()
			for _, tc := range cases {
				var buf bytes.Buffer
				require.NoError(t, r.Run(tc.name, &buf), tc.name)
				assert.Equal(t, tc.want, buf.String(), tc.name)
			}
		})
	}
}

func TestDefault_PagesLeaveSharedStateRestored(t *testing.T) {
	before := lazy.Shared().Name
	beforeSettings := lazy.SharedSettings().Name

	t.Run("run pages", func(t *testing.T) {
		restoreSingletons(t)

		r := Default()
		require.NoError(t, r.Run(PageImplementation, io.Discard))
		require.NoError(t, r.Run(PageAnotherImplementation, io.Discard))
		assert.Equal(t, "name 1", lazy.Shared().Name)
		assert.Equal(t, "name2", lazy.SharedSettings().Name)
	})

	assert.Equal(t, before, lazy.Shared().Name)
	assert.Equal(t, beforeSettings, lazy.SharedSettings().Name)
}

func TestPrinter_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	p := &printer{w: failingWriter{}}
	p.println("a")
	p.printf("%s", "b")

	assert.ErrorIs(t, p.err, errWrite)
}
