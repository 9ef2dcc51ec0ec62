package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/rflaunch/pkg/suite"
)

func TestBuild_LastArgIsTestPath_ForEveryCatalogEntry(t *testing.T) {
	for _, c := range suite.All() {
		b := Builder{DefaultPath: c.DefaultPath}
		for _, e := range c.Entries {
			cmd := b.Build(e.Config, "out")
			want := e.Config.TestPath
			if want == "" {
				want = c.DefaultPath
			}
			assert.Equal(t, want, cmd.Argv[len(cmd.Argv)-1], "%s/%s", c.Domain, e.Key)
		}
	}
}

func TestBuild_DefaultPathWhenUnset(t *testing.T) {
	cmd := Builder{DefaultPath: "tests/api/users"}.Build(suite.RunConfiguration{}, "out")
	assert.Equal(t, "tests/api/users", cmd.Argv[len(cmd.Argv)-1])
}

func TestBuild_AuthConnectivity(t *testing.T) {
	e, ok := suite.Auth().Lookup("9")
	require.True(t, ok)

	cmd := Builder{}.Build(e.Config, "results/api/auth_api/20250101_120000")

	assert.Equal(t, []string{
		"python3", "-m", "robot",
		"--outputdir", "results/api/auth_api/20250101_120000",
		"--test", "Authentication Service Connectivity Test",
		"tests/api/auth/auth_test_suite.robot",
	}, cmd.Argv)
	assert.Equal(t, "python3", cmd.Name())
	assert.Equal(t,
		`python3 -m robot --outputdir results/api/auth_api/20250101_120000 --test "Authentication Service Connectivity Test" tests/api/auth/auth_test_suite.robot`,
		cmd.String())
}

func TestBuild_NoTestFlagWithoutName(t *testing.T) {
	cmd := Builder{}.Build(suite.RunConfiguration{TestPath: "x"}, "out")
	assert.NotContains(t, cmd.Argv, FlagTest)
	assert.Contains(t, cmd.Argv, FlagOutputDir)
}

func TestBuild_TagFlagsPreserveOrder(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
	}{
		{"none", nil, nil},
		{"one include", []string{"smoke"}, nil},
		{"three include", []string{"add-user", "update-user", "delete-user"}, nil},
		{"mixed", []string{"smoke", "error"}, []string{"slow"}},
		{"exclude only", nil, []string{"wip", "flaky"}},
		{"passthrough", []string{"", "has space"}, []string{"--weird"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Builder{Runner: []string{"robot"}}.Build(suite.RunConfiguration{
				TestPath:    "p",
				IncludeTags: tt.include,
				ExcludeTags: tt.exclude,
			}, "out")

			assert.Equal(t, tt.include, valuesAfter(cmd.Argv, FlagInclude))
			assert.Equal(t, tt.exclude, valuesAfter(cmd.Argv, FlagExclude))
		})
	}
}

func TestBuild_RunnerNotAliased(t *testing.T) {
	runner := []string{"robot"}
	b := Builder{Runner: runner}
	first := b.Build(suite.RunConfiguration{TestPath: "a"}, "o1")
	_ = b.Build(suite.RunConfiguration{TestPath: "b"}, "o2")
	assert.Equal(t, "a", first.Argv[len(first.Argv)-1])
	assert.Equal(t, []string{"robot"}, runner)
}

func TestCommand_ArgsAndEmpty(t *testing.T) {
	var empty Command
	assert.Empty(t, empty.Name())
	assert.Nil(t, empty.Args())

	cmd := Command{Argv: []string{"robot", "--outputdir", "o", "p"}}
	assert.Equal(t, []string{"--outputdir", "o", "p"}, cmd.Args())
}

// valuesAfter collects the argument following each occurrence of flag.
// It returns nil when the flag never appears.
func valuesAfter(argv []string, flag string) []string {
	var out []string
	for i := 0; i < len(argv)-1; i++ {
		if argv[i] == flag {
			out = append(out, argv[i+1])
			i++
		}
	}
	return out
}
