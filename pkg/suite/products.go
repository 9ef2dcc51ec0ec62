package suite

const productsDir = "tests/api/products/"

// Products returns the products API catalog. It is the only catalog with
// free-text entries and an explicit exit key.
func Products() *Catalog {
	file := func(name string) string { return productsDir + name }
	tagged := func(desc, tag string) RunConfiguration {
		return RunConfiguration{Description: desc, TestPath: productsDir, IncludeTags: []string{tag}}
	}
	return &Catalog{
		Domain:          "products",
		Title:           "Products API Test Suite Execution",
		Subtitle:        "DummyJSON Products API Tests",
		DefaultPath:     productsDir,
		ResultSubDomain: "products_api",
		Entries: []Entry{
			{"1", RunConfiguration{Description: "All Products API Tests", TestPath: productsDir}},
			{"2", RunConfiguration{Description: "Get All Products Tests", TestPath: file("products_get_all_tests.robot")}},
			{"3", RunConfiguration{Description: "Get Product By ID Tests", TestPath: file("products_get_by_id_tests.robot")}},
			{"4", RunConfiguration{Description: "Search Products Tests", TestPath: file("products_search_tests.robot")}},
			{"5", RunConfiguration{Description: "Categories Tests", TestPath: file("products_categories_tests.robot")}},
			{"6", RunConfiguration{Description: "Products By Category Tests", TestPath: file("products_by_category_tests.robot")}},
			{"7", RunConfiguration{Description: "Add Product Tests", TestPath: file("products_add_tests.robot")}},
			{"8", RunConfiguration{Description: "Update Product Tests", TestPath: file("products_update_tests.robot")}},
			{"9", RunConfiguration{Description: "Delete Product Tests", TestPath: file("products_delete_tests.robot")}},
			{"10", tagged("Smoke Tests (Quick Validation)", "smoke")},
			{"11", tagged("Error Tests (Error Scenarios)", "error")},
			{"12", tagged("Validation Tests (Response Validation)", "validation")},
			{"13", tagged("Simulated Tests (CRUD Operations)", "simulated")},
			{"14", tagged("Edge Case Tests", "edge-case")},
			{"15", tagged("Performance Tests", "performance")},
			{"16", tagged("Security Tests", "security")},
			{"17", tagged("Integration Tests", "integration")},
			{"18", tagged("Business Logic Tests", "business-logic")},
		},
		CustomTagKey: "19",
		TestNameKey:  "20",
		ExitKey:      "0",
		Reprompt:     true,
	}
}
