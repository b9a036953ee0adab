// Command accessmanagerdemo builds a small staff directory against
// pkg/accessmanager and prints a handful of access decisions, exercising
// the core's contract end to end: vertices, edges, component mappings,
// entity mappings, and both query shapes.
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/barnowlsnest/go-accessmanager/pkg/accessmanager"
)

// applicationScreen names a screen of the fictional application this demo
// sets up access for.
type applicationScreen int

const (
	screenOrder applicationScreen = iota
	screenOrderSummary
	screenProductsSetup
	screenSystemSettings
	screenClientInteractions
)

func (s applicationScreen) String() string {
	switch s {
	case screenOrder:
		return "Order"
	case screenOrderSummary:
		return "OrderSummary"
	case screenProductsSetup:
		return "ProductsSetup"
	case screenSystemSettings:
		return "SystemSettings"
	case screenClientInteractions:
		return "ClientInteractions"
	default:
		return "Unknown"
	}
}

// accessLevel names a level of access to an applicationScreen.
type accessLevel int

const (
	accessView accessLevel = iota
	accessCreate
	accessModify
	accessDelete
)

func (a accessLevel) String() string {
	switch a {
	case accessView:
		return "View"
	case accessCreate:
		return "Create"
	case accessModify:
		return "Modify"
	case accessDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

func main() {
	am := accessmanager.New[string, string, applicationScreen, accessLevel]()

	users := []string{
		"livia.bowe", "arjan.hartman", "cleo.short", "mae.mellor",
		"frankie.koch", "deborah.moss", "kishan.buchanan", "seb.sutton",
		"bo.wagner", "tye.knights",
	}
	for _, u := range users {
		must(am.AddUser(u))
	}

	groups := []string{"Sales", "SalesManagers", "Managers", "IT", "CustomerService", "AllStaff"}
	for _, g := range groups {
		must(am.AddGroup(g))
	}

	userGroups := map[string]string{
		"livia.bowe":      "Sales",
		"arjan.hartman":   "Sales",
		"frankie.koch":    "Sales",
		"cleo.short":      "SalesManagers",
		"mae.mellor":      "SalesManagers",
		"deborah.moss":    "CustomerService",
		"kishan.buchanan": "CustomerService",
		"seb.sutton":      "IT",
		"bo.wagner":       "Managers",
		"tye.knights":     "Managers",
	}
	for user, group := range userGroups {
		must(am.AddUserToGroupMapping(user, group))
	}

	groupChains := [][2]string{
		{"SalesManagers", "Sales"},
		{"Sales", "AllStaff"},
		{"Managers", "AllStaff"},
		{"IT", "AllStaff"},
		{"CustomerService", "AllStaff"},
	}
	for _, edge := range groupChains {
		must(am.AddGroupToGroupMapping(edge[0], edge[1]))
	}

	must(am.AddGroupToApplicationComponentAndAccessLevelMapping("AllStaff", screenOrderSummary, accessView))
	must(am.AddGroupToApplicationComponentAndAccessLevelMapping("AllStaff", screenClientInteractions, accessView))
	must(am.AddGroupToApplicationComponentAndAccessLevelMapping("Sales", screenOrder, accessModify))
	must(am.AddGroupToApplicationComponentAndAccessLevelMapping("SalesManagers", screenProductsSetup, accessModify))
	must(am.AddGroupToApplicationComponentAndAccessLevelMapping("CustomerService", screenClientInteractions, accessModify))
	must(am.AddGroupToApplicationComponentAndAccessLevelMapping("IT", screenSystemSettings, accessModify))

	must(am.AddEntityType("Clients"))
	for _, c := range []string{"CompanyA", "CompanyB", "CompanyC"} {
		must(am.AddEntity("Clients", c))
	}
	must(am.AddEntityType("Products"))
	for _, p := range []string{"PrintingMachines", "WeavingMachines"} {
		must(am.AddEntity("Products", p))
	}

	productMappings := map[string]string{
		"livia.bowe":    "PrintingMachines",
		"arjan.hartman": "PrintingMachines",
		"cleo.short":    "PrintingMachines",
		"frankie.koch":  "WeavingMachines",
		"mae.mellor":    "WeavingMachines",
	}
	for user, product := range productMappings {
		must(am.AddUserToEntityMapping(user, "Products", product))
	}
	clientMappings := map[string][]string{
		"deborah.moss":    {"CompanyA", "CompanyB"},
		"kishan.buchanan": {"CompanyA", "CompanyB", "CompanyC"},
	}
	for user, clients := range clientMappings {
		for _, c := range clients {
			must(am.AddUserToEntityMapping(user, "Clients", c))
		}
	}

	report(am, "cleo.short", screenProductsSetup, accessModify)
	report(am, "mae.mellor", screenProductsSetup, accessModify)

	entityReport(am, "frankie.koch", "Products", "WeavingMachines")
	entityReport(am, "arjan.hartman", "Products", "WeavingMachines")

	accessible, err := am.GetAccessibleEntities("kishan.buchanan", "Clients")
	if err != nil {
		log.Fatalf("get accessible entities: %v", err)
	}
	names := make([]string, 0, len(accessible))
	for name := range accessible {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("kishan.buchanan can view clients: %v\n", names)
}

func report(am *accessmanager.AccessManager[string, string, applicationScreen, accessLevel], user string, screen applicationScreen, access accessLevel) {
	ok, err := am.HasAccessToApplicationComponent(user, screen, access)
	if err != nil {
		log.Fatalf("has access to component: %v", err)
	}
	fmt.Printf("%s has %s access to %s: %t\n", user, access, screen, ok)
}

func entityReport(am *accessmanager.AccessManager[string, string, applicationScreen, accessLevel], user, entityType, entity string) {
	ok, err := am.HasAccessToEntity(user, entityType, entity)
	if err != nil {
		log.Fatalf("has access to entity: %v", err)
	}
	fmt.Printf("%s has access to %s %s: %t\n", user, entityType, entity, ok)
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
