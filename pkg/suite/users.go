package suite

const usersDir = "tests/api/users"

// Users returns the users API catalog.
func Users() *Catalog {
	return &Catalog{
		Domain:          "users",
		Title:           "Users API Test Suite Execution",
		Subtitle:        "DummyJSON Users API Tests",
		DefaultPath:     usersDir,
		ResultSubDomain: "users_api",
		Entries: []Entry{
			{"1", RunConfiguration{Description: "All Users Tests", TestPath: usersDir}},
			{"2", RunConfiguration{Description: "Login Tests Only", TestPath: usersDir + "/users_login_tests.robot"}},
			{"3", RunConfiguration{Description: "Get All Users Tests Only", TestPath: usersDir + "/users_get_all_tests.robot"}},
			{"4", RunConfiguration{Description: "Get User By ID Tests Only", TestPath: usersDir + "/users_get_by_id_tests.robot"}},
			{"5", RunConfiguration{Description: "Search Users Tests Only", TestPath: usersDir + "/users_search_tests.robot"}},
			{"6", RunConfiguration{Description: "Add User Tests Only", TestPath: usersDir + "/users_add_tests.robot"}},
			{"7", RunConfiguration{Description: "Update User Tests Only", TestPath: usersDir + "/users_update_tests.robot"}},
			{"8", RunConfiguration{Description: "Delete User Tests Only", TestPath: usersDir + "/users_delete_tests.robot"}},
			{"9", RunConfiguration{Description: "Smoke Tests Only", TestPath: usersDir, IncludeTags: []string{"smoke"}}},
			{"10", RunConfiguration{Description: "Error Tests Only", TestPath: usersDir, IncludeTags: []string{"error"}}},
			{"11", RunConfiguration{Description: "Success Tests Only", TestPath: usersDir, IncludeTags: []string{"success"}}},
			{"12", RunConfiguration{Description: "Simulated Tests Only", TestPath: usersDir, IncludeTags: []string{"simulated"}}},
			{"13", RunConfiguration{
				Description: "CRUD Operations Only",
				TestPath:    usersDir,
				IncludeTags: []string{"add-user", "update-user", "delete-user"},
			}},
			{"14", RunConfiguration{
				Description: "Single Login Test",
				TestPath:    usersDir + "/users_login_tests.robot",
				TestName:    "Admin User Emily Can Login Successfully",
			}},
		},
	}
}
