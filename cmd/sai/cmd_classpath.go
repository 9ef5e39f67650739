package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javasem/javasem/gradle"
	"github.com/javasem/javasem/pom"
	"github.com/spf13/cobra"
)

func newClasspathCmd() *cobra.Command {
	var cpLibDir string
	var offline bool

	cmd := &cobra.Command{
		Use:   "classpath",
		Short: "Print the classpath from pom.xml or lib/ directory",
		Long: `Print the classpath as a colon-separated list of JAR paths.

If pom.xml exists in the current directory, dependencies are resolved
from it and printed as Maven repository paths (requires downloading).

If build.gradle or build.gradle.kts exists, the Gradle wrapper's
dependencies report is used instead.

Otherwise, all .jar files in the lib/ directory (or specified via -l)
are listed.

Examples:
  sai classpath              # Use pom.xml if present, else lib/
  sai classpath -l deps/     # Use deps/ directory
  sai classpath --offline    # Resolve pom.xml via "mvn dependency:tree" against the local repo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasspath(cpLibDir, offline)
		},
	}

	cmd.Flags().StringVarP(&cpLibDir, "lib", "l", "lib", "directory containing JAR files")
	cmd.Flags().BoolVar(&offline, "offline", false, "resolve pom.xml dependencies from the local Maven repository instead of fetching over HTTP")

	return cmd
}

func runClasspath(libDir string, offline bool) error {
	if _, err := os.Stat("pom.xml"); err == nil {
		if offline {
			return runClasspathFromLocalRepo(".")
		}
		return runClasspathFromPOM()
	}
	if isGradleProject() {
		return runClasspathFromGradle()
	}
	return runClasspathFromLib(libDir)
}

// runClasspathFromLocalRepo resolves a Maven project's classpath without any
// network access, by shelling out to "mvn dependency:tree" and matching the
// resulting coordinates against jars already present in ~/.m2/repository.
func runClasspathFromLocalRepo(projectDir string) error {
	roots, err := pom.RunDependencyTree(projectDir)
	if err != nil {
		return fmt.Errorf("resolve local dependency tree: %w", err)
	}
	paths := pom.LocalRepoClasspath(pom.DefaultLocalRepo(), roots)
	fmt.Println(strings.Join(paths, ":"))
	return nil
}

func isGradleProject() bool {
	for _, name := range []string{"build.gradle", "build.gradle.kts"} {
		if _, err := os.Stat(name); err == nil {
			return true
		}
	}
	return false
}

// runClasspathFromGradle shells out to the Gradle wrapper's dependencies
// report and resolves every coordinate against the local Maven-style
// repository Gradle shares the JAR cache layout with.
func runClasspathFromGradle() error {
	roots, err := gradle.RunDependencies(".", "compileClasspath")
	if err != nil {
		return fmt.Errorf("resolve gradle dependencies: %w", err)
	}

	repoDir := pom.DefaultLocalRepo()
	seen := make(map[string]bool)
	var paths []string
	for _, dep := range gradle.Flatten(roots) {
		key := dep.Group + ":" + dep.Name + ":" + dep.Version
		if seen[key] || dep.Group == "" {
			continue
		}
		seen[key] = true
		groupPath := strings.ReplaceAll(dep.Group, ".", string(filepath.Separator))
		jarPath := filepath.Join(repoDir, groupPath, dep.Name, dep.Version, dep.Name+"-"+dep.Version+".jar")
		if _, err := os.Stat(jarPath); err == nil {
			paths = append(paths, jarPath)
		}
	}

	fmt.Println(strings.Join(paths, ":"))
	return nil
}

func runClasspathFromPOM() error {
	data, err := os.ReadFile("pom.xml")
	if err != nil {
		return fmt.Errorf("read pom.xml: %w", err)
	}

	var project pom.Project
	if err := xml.Unmarshal(data, &project); err != nil {
		return fmt.Errorf("parse pom.xml: %w", err)
	}

	fetcher := pom.NewMavenFetcher()
	resolver := pom.NewResolver(fetcher)
	deps, err := resolver.Resolve(&project)
	if err != nil {
		return fmt.Errorf("resolve dependencies: %w", err)
	}

	var paths []string
	for _, dep := range deps {
		if dep.Type != "" && dep.Type != "jar" {
			continue
		}
		jarPath := fetcher.JarURL(dep.GroupID, dep.ArtifactID, dep.Version, dep.Classifier)
		paths = append(paths, jarPath)
	}

	fmt.Println(strings.Join(paths, ":"))
	return nil
}

func runClasspathFromLib(libDir string) error {
	entries, err := os.ReadDir(libDir)
	if err != nil {
		return fmt.Errorf("read lib directory %s: %w", libDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".jar" {
			paths = append(paths, filepath.Join(libDir, entry.Name()))
		}
	}

	fmt.Println(strings.Join(paths, ":"))
	return nil
}
