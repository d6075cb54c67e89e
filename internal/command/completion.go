// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgctl/internal/meta"
)

const bashCompletionScript = `# bash completion for cfgctl
_cfgctl()
{
    local cur prev cmd
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "get dump env diff completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--config -c --default -d --dotenv --env-file --base-dir --bucket --region --profile --endpoint --path-style"

    case "$cmd" in
        get)
            local opts="$common --fallback"
            ;;
        dump)
            local opts="$common --color --filter -f --origin --output -o --padding --query -q --sort -s --titles -t"
            ;;
        diff)
            local opts="$common --color --ignore"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --color)
            COMPREPLY=( $(compgen -W "auto always never" -- "$cur") )
            return 0
            ;;
        --config|-c|--dotenv|--env-file|--base-dir)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _cfgctl cfgctl
`

const zshCompletionScript = `#compdef cfgctl

_cfgctl() {
  local -a cmds
  cmds=(
    'get:print one config value'
    'dump:print the resolved config'
    'env:show the environment and the backend it selects'
    'diff:compare the resolved config with another document'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --config)'{-c,--config}'[config document]:file:_files'
  '*'{-d,--default}'[default KEY=VALUE]:default'
  '*--dotenv[dotenv file]:file:_files'
  '--env-file[environment descriptor file]:file:_files'
  '--base-dir[base directory]:dir:_directories'
  '--bucket[bucket]:bucket'
  '--region[AWS region]:region'
  '--profile[AWS profile]:profile'
  '--endpoint[S3 endpoint]:url'
  '--path-style[path-style addressing]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'cfgctl commands' cmds
    return
  fi

  case $words[2] in
    get)
      _arguments -C $common '--fallback[value when absent]:value' '1:key'
      ;;
    dump)
      _arguments -C \
        $common \
        '--color[colorize]:mode:(auto always never)' \
        '(-f --filter)'{-f,--filter}'[filters]:filters' \
        '--origin[show origins]' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '--padding[column padding]:n' \
        '(-q --query)'{-q,--query}'[gjson path]:path' \
        '(-s --sort)'{-s,--sort}'[sort columns]:cols' \
        '(-t --titles)'{-t,--titles}'[show titles]'
      ;;
    diff)
      _arguments -C $common '--color[colorize]:mode:(auto always never)' '*--ignore[ignore key]:key' '1:other:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _cfgctl cfgctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := Writer(cmd)

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "cfgctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
