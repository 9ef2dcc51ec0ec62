package suite

const authDir = "tests/api/auth"

// Auth returns the authentication service catalog.
func Auth() *Catalog {
	return &Catalog{
		Domain:          "auth",
		Title:           "Authentication Test Suite Execution",
		Subtitle:        "DummyJSON Auth API Tests",
		DefaultPath:     authDir,
		ResultSubDomain: "auth_api",
		Entries: []Entry{
			{"1", RunConfiguration{Description: "All Auth Tests", TestPath: authDir}},
			{"2", RunConfiguration{Description: "Login Tests Only", TestPath: authDir + "/auth_login_tests.robot"}},
			{"3", RunConfiguration{Description: "User Info Tests Only", TestPath: authDir + "/auth_user_info_tests.robot"}},
			{"4", RunConfiguration{Description: "Token Refresh Tests Only", TestPath: authDir + "/auth_refresh_token_tests.robot"}},
			{"5", RunConfiguration{Description: "Integration Tests Only", TestPath: authDir + "/auth_integration_tests.robot"}},
			{"6", RunConfiguration{Description: "Smoke Tests Only", TestPath: authDir, IncludeTags: []string{"smoke"}}},
			{"7", RunConfiguration{Description: "Error Tests Only", TestPath: authDir, IncludeTags: []string{"error"}}},
			{"8", RunConfiguration{Description: "Success Tests Only", TestPath: authDir, IncludeTags: []string{"success"}}},
			{"9", RunConfiguration{
				Description: "Connectivity Test Only",
				TestPath:    authDir + "/auth_test_suite.robot",
				TestName:    "Authentication Service Connectivity Test",
			}},
			{"10", RunConfiguration{
				Description: "Single Login Test",
				TestPath:    authDir + "/auth_login_tests.robot",
				TestName:    "Successful Login With Valid Credentials - Emily",
			}},
		},
	}
}
