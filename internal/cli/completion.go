// Shell completion script generation for various shells.
package cli

import (
	"fmt"
	"io"
	"strings"
)

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - algorithms: List of available algorithm names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, algorithms []string) error {
	script := `# Bash completion script for primecheck
# Add this to your ~/.bashrc or ~/.bash_completion

_primecheck_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="--help -h --version -V -n -v --algo --rounds --sieve-limit --trial-limit --prob-limit --batch --workers --timeout --json --server --port --no-color --quiet -q --completion"

    # Available algorithms
    algorithms="%s"

    case "${prev}" in
        --algo)
            COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )
            return 0
            ;;
        --completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- "${cur}") )
            return 0
            ;;
        --port)
            COMPREPLY=( $(compgen -W "8080 3000 5000 9000" -- "${cur}") )
            return 0
            ;;
        --timeout)
            COMPREPLY=( $(compgen -W "1m 5m 10m 30m 1h" -- "${cur}") )
            return 0
            ;;
        --rounds)
            COMPREPLY=( $(compgen -W "5 10 20 40" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _primecheck_completions primecheck
`
	_, err := fmt.Fprintf(out, script, strings.Join(algorithms, " "))
	return err
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, algorithms []string) error {
	script := `#compdef primecheck

# Zsh completion script for primecheck
# Add this to your ~/.zshrc or place in $fpath

_primecheck() {
    local -a algorithms
    algorithms=(%s)

    _arguments -s \
        '(-h --help)'{-h,--help}'[Show help message]' \
        '(-V --version)'{-V,--version}'[Show version information]' \
        '-n[Candidate integer to test]:number:' \
        '-v[Include tier and timing details]' \
        '--algo[Algorithm to use]:algorithm:($algorithms)' \
        '--rounds[Witness rounds for the probabilistic tests]:rounds:(5 10 20 40)' \
        '--sieve-limit[Sieve tier upper bound]:limit:' \
        '--trial-limit[Trial-division tier upper bound]:limit:' \
        '--prob-limit[Probabilistic tier upper bound]:limit:' \
        '--batch[Batch mode upper bound]:number:' \
        '--workers[Batch worker count]:count:' \
        '--timeout[Maximum execution time]:duration:(1m 5m 10m 30m 1h)' \
        '--json[Output in JSON format]' \
        '--server[Start HTTP server mode]' \
        '--port[Server port]:port:(8080 3000 5000 9000)' \
        '--no-color[Disable colored output]' \
        '(-q --quiet)'{-q,--quiet}'[Quiet mode for scripts]' \
        '--completion[Generate completion script]:shell:(bash zsh fish powershell)'
}

_primecheck "$@"
`
	_, err := fmt.Fprintf(out, script, strings.Join(algorithms, " "))
	return err
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, algorithms []string) error {
	script := `# Fish completion script for primecheck
# Add this to ~/.config/fish/completions/primecheck.fish

# Disable file completion by default
complete -c primecheck -f

# Help and version
complete -c primecheck -s h -l help -d 'Show help message'
complete -c primecheck -s V -l version -d 'Show version information'

# Main options
complete -c primecheck -s n -d 'Candidate integer to test' -x
complete -c primecheck -s v -d 'Include tier and timing details'
complete -c primecheck -l algo -d 'Algorithm to use' -xa '%s'
complete -c primecheck -l rounds -d 'Witness rounds' -xa '5 10 20 40'
complete -c primecheck -l sieve-limit -d 'Sieve tier upper bound' -x
complete -c primecheck -l trial-limit -d 'Trial-division tier upper bound' -x
complete -c primecheck -l prob-limit -d 'Probabilistic tier upper bound' -x
complete -c primecheck -l batch -d 'Batch mode upper bound' -x
complete -c primecheck -l workers -d 'Batch worker count' -x
complete -c primecheck -l timeout -d 'Maximum execution time' -xa '1m 5m 10m 30m 1h'

# Output options
complete -c primecheck -l json -d 'Output in JSON format'
complete -c primecheck -s q -l quiet -d 'Quiet mode for scripts'
complete -c primecheck -l no-color -d 'Disable colored output'

# Server mode
complete -c primecheck -l server -d 'Start HTTP server mode'
complete -c primecheck -l port -d 'Server port' -xa '8080 3000 5000 9000'

# Completion
complete -c primecheck -l completion -d 'Generate completion script' -xa 'bash zsh fish powershell'
`
	_, err := fmt.Fprintf(out, script, strings.Join(algorithms, " "))
	return err
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, algorithms []string) error {
	script := `# PowerShell completion script for primecheck
# Add this to your $PROFILE

$primecheckAlgorithms = @(%s)

Register-ArgumentCompleter -CommandName 'primecheck' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
        @{Name = '-h'; Description = 'Show help message' }
        @{Name = '--help'; Description = 'Show help message' }
        @{Name = '-V'; Description = 'Show version information' }
        @{Name = '--version'; Description = 'Show version information' }
        @{Name = '-n'; Description = 'Candidate integer to test' }
        @{Name = '-v'; Description = 'Include tier and timing details' }
        @{Name = '--algo'; Description = 'Algorithm to use' }
        @{Name = '--rounds'; Description = 'Witness rounds' }
        @{Name = '--sieve-limit'; Description = 'Sieve tier upper bound' }
        @{Name = '--trial-limit'; Description = 'Trial-division tier upper bound' }
        @{Name = '--prob-limit'; Description = 'Probabilistic tier upper bound' }
        @{Name = '--batch'; Description = 'Batch mode upper bound' }
        @{Name = '--workers'; Description = 'Batch worker count' }
        @{Name = '--timeout'; Description = 'Maximum execution time' }
        @{Name = '--json'; Description = 'Output in JSON format' }
        @{Name = '--server'; Description = 'Start HTTP server mode' }
        @{Name = '--port'; Description = 'Server port' }
        @{Name = '--no-color'; Description = 'Disable colored output' }
        @{Name = '-q'; Description = 'Quiet mode for scripts' }
        @{Name = '--quiet'; Description = 'Quiet mode for scripts' }
        @{Name = '--completion'; Description = 'Generate completion script' }
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
        '--algo' {
            $primecheckAlgorithms | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
        '--completion' {
            @('bash', 'zsh', 'fish', 'powershell') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
        '--timeout' {
            @('1m', '5m', '10m', '30m', '1h') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
        '--port' {
            @('8080', '3000', '5000', '9000') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`
	quoted := make([]string, len(algorithms))
	for i, algo := range algorithms {
		quoted[i] = fmt.Sprintf("'%s'", algo)
	}

	_, err := fmt.Fprintf(out, script, strings.Join(quoted, ", "))
	return err
}
