// Command axiom-rules inspects the standard rule catalog.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/catalog"
)

func main() {
	var (
		category = flag.String("category", "", "List only rules of this category")
		name     = flag.String("name", "", "Show a single rule by name")
	)
	flag.Parse()

	cat := catalog.New()

	if *name != "" {
		info, err := cat.Info(*name, nil)
		if err != nil {
			log.Fatalf("lookup rule: %v", err)
		}
		printInfo(info)
		return
	}

	if *category != "" {
		rules, err := cat.Category(*category)
		if err != nil {
			log.Fatalf("lookup category: %v", err)
		}
		fmt.Printf("%s (%d rules)\n", *category, len(rules))
		for _, r := range rules {
			fmt.Printf("  %-28s %s\n", r.Name, r)
		}
		return
	}

	for _, c := range cat.Categories() {
		rules, err := cat.Category(c)
		if err != nil {
			log.Fatalf("lookup category: %v", err)
		}
		fmt.Printf("%s (%d rules)\n", c, len(rules))
		for _, r := range rules {
			fmt.Printf("  %-28s %s\n", r.Name, r)
		}
	}
}

func printInfo(info catalog.RuleInfo) {
	fmt.Printf("name:       %s\n", info.Name)
	fmt.Printf("category:   %s\n", info.Category)
	fmt.Printf("premises:   %s\n", strings.Join(info.Premises, " ∧ "))
	fmt.Printf("conclusion: %s\n", info.Conclusion)
}
